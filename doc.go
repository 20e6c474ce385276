// Package safedone guards a completion callback pair so that it fires at
// most once.
//
// Asynchronous code often has more than one path that can report an
// outcome: a result arrives, an error arrives, a deadline passes. When each
// path calls done or fail, the pair ends up invoked twice. safedone wraps the
// pair so the first call to either side wins and every later call is a
// silent no-op:
//
//	done, fail := safedone.Wrap(
//		func() { log.Print("finished") },
//		func(err error) { log.Printf("failed: %v", err) },
//	)
//
//	go func() { fail(ctx.Err()) }()
//	done()
//	done() // ignored
//
// Use [WrapFunc] and [WrapValue] for callbacks with other signatures, and
// [MakeSafe] for values implementing [Done]. The guard is safe for concurrent
// use; the first caller wins even when calls race.
//
// A callback that panics still counts as fired. The panic reaches the caller
// unchanged.
package safedone
