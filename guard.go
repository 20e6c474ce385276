package safedone

import "sync/atomic"

// Guard holds the shared fired flag for one wrapped callback pair.
// The zero value is not usable; create one with New.
type Guard struct {
	fired    atomic.Bool
	handle   atomic.Int32
	done     chan struct{}
	name     string
	observer Observer
}

// New returns an armed Guard.
func New(opts ...Option) *Guard {
	g := &Guard{done: make(chan struct{})}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Primary runs fn if the guard has not fired yet, marking it fired by the
// primary handle. It reports whether fn ran.
func (g *Guard) Primary(fn func()) bool {
	return g.call(Primary, fn)
}

// Failure runs fn if the guard has not fired yet, marking it fired by the
// failure handle. It reports whether fn ran.
func (g *Guard) Failure(fn func()) bool {
	return g.call(Failure, fn)
}

// Fired reports whether either handle has already been called.
func (g *Guard) Fired() bool {
	return g.fired.Load()
}

// Handle returns the handle that fired the guard, or HandleNone.
func (g *Guard) Handle() Handle {
	return Handle(g.handle.Load())
}

// Wait returns a channel that is closed once the guard fires.
func (g *Guard) Wait() <-chan struct{} {
	return g.done
}

func (g *Guard) call(h Handle, fn func()) bool {
	if !g.arm(h) {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

// arm flips the flag. The flag is set before the callback runs so a
// panicking callback still leaves the guard fired.
func (g *Guard) arm(h Handle) bool {
	if !g.fired.CompareAndSwap(false, true) {
		g.emit(EventSuppressed, h)
		return false
	}
	g.handle.Store(int32(h))
	close(g.done)
	g.emit(EventFired, h)
	return true
}

func (g *Guard) emit(event Event, h Handle) {
	if g.observer == nil {
		return
	}
	g.observer.On(EventData{
		Event:  event,
		Handle: h,
		Name:   g.name,
	})
}
