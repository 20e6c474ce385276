package safedone

// Done is a completion signal with a success and a failure side.
type Done interface {
	Done()
	Fail(err error)
}

// SafeDone wraps a Done so that only the first call to Done or Fail is
// forwarded. SafeDone itself implements Done.
type SafeDone struct {
	guard *Guard
	next  Done
}

// MakeSafe wraps d. It panics if d is nil.
func MakeSafe(d Done, opts ...Option) *SafeDone {
	if d == nil {
		panic("safedone: MakeSafe called with nil Done")
	}
	return &SafeDone{guard: New(opts...), next: d}
}

// Done forwards to the wrapped Done if nothing has fired yet.
func (s *SafeDone) Done() {
	s.guard.Primary(s.next.Done)
}

// Fail forwards err to the wrapped Fail if nothing has fired yet.
func (s *SafeDone) Fail(err error) {
	s.guard.Failure(func() {
		s.next.Fail(err)
	})
}

// Guard exposes the underlying guard, e.g. to select on Wait.
func (s *SafeDone) Guard() *Guard {
	return s.guard
}

// Funcs adapts a pair of plain functions to Done. A nil field is a no-op.
type Funcs struct {
	OnDone func()
	OnFail func(err error)
}

func (f Funcs) Done() {
	if f.OnDone != nil {
		f.OnDone()
	}
}

func (f Funcs) Fail(err error) {
	if f.OnFail != nil {
		f.OnFail(err)
	}
}
