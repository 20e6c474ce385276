package safedone_test

import (
	"errors"
	"fmt"

	safedone "github.com/probablyarth/safedone-go"
)

func ExampleWrap() {
	done, fail := safedone.Wrap(
		func() { fmt.Println("done") },
		func(err error) { fmt.Println("failed:", err) },
	)

	done()
	fail(errors.New("too late"))
	done()
	// Output: done
}

func ExampleWrapValue() {
	primary, failure := safedone.WrapValue(
		func(n int) int { return n * 2 },
		func(err error) int { return -1 },
	)

	fmt.Println(failure(errors.New("boom")))
	fmt.Println(primary(21))
	// Output:
	// -1
	// 0
}

func ExampleGuard_Wait() {
	g := safedone.New(safedone.WithName("job"))

	go g.Primary(func() {})

	<-g.Wait()
	fmt.Println(g.Handle())
	// Output: primary
}
