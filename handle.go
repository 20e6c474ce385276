package safedone

// Handle identifies one side of a guarded callback pair.
type Handle int32

const (
	// HandleNone is reported by an armed guard.
	HandleNone Handle = iota
	// Primary is the completion ("done") side.
	Primary
	// Failure is the failure ("fail") side.
	Failure
)

func (h Handle) String() string {
	switch h {
	case Primary:
		return "primary"
	case Failure:
		return "failure"
	default:
		return "none"
	}
}
