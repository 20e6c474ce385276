package safedone

// Wrap returns guarded versions of a done/fail completion pair. The first
// call to either returned function invokes the matching original; every
// later call to either one is a no-op.
func Wrap(done func(), fail func(error), opts ...Option) (func(), func(error)) {
	g := New(opts...)
	return func() {
			g.Primary(done)
		}, func(err error) {
			g.Failure(func() {
				if fail != nil {
					fail(err)
				}
			})
		}
}

// WrapFunc is Wrap for callbacks taking one argument of any type. Pass a
// struct to forward several values.
func WrapFunc[A, B any](primary func(A), failure func(B), opts ...Option) (func(A), func(B)) {
	g := New(opts...)
	return func(a A) {
			if g.arm(Primary) && primary != nil {
				primary(a)
			}
		}, func(b B) {
			if g.arm(Failure) && failure != nil {
				failure(b)
			}
		}
}

// WrapValue is WrapFunc for callbacks that return a value. The call that
// fires the guard returns the callback's result; suppressed calls return
// the zero value of the result type.
func WrapValue[A, RA, B, RB any](primary func(A) RA, failure func(B) RB, opts ...Option) (func(A) RA, func(B) RB) {
	g := New(opts...)
	return func(a A) RA {
			var zero RA
			if !g.arm(Primary) || primary == nil {
				return zero
			}
			return primary(a)
		}, func(b B) RB {
			var zero RB
			if !g.arm(Failure) || failure == nil {
				return zero
			}
			return failure(b)
		}
}
