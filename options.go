package safedone

// Option configures a Guard.
type Option func(*Guard)

// WithObserver attaches an Observer that receives fired and suppressed
// events for the lifetime of the guard.
func WithObserver(o Observer) Option {
	return func(g *Guard) {
		g.observer = o
	}
}

// WithName labels the guard in emitted events.
func WithName(name string) Option {
	return func(g *Guard) {
		g.name = name
	}
}
