package safedone

// Observer receives guard events. Implementations must be safe for
// concurrent use when the guarded handles are called from multiple
// goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a guard event type.
type Event int

const (
	// EventFired is emitted when a call wins the guard, before the
	// wrapped callback runs.
	EventFired Event = iota
	// EventSuppressed is emitted for every call that arrives after the
	// guard has fired.
	EventSuppressed
)

func (e Event) String() string {
	switch e {
	case EventFired:
		return "fired"
	case EventSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// EventData carries the details of a guard event.
type EventData struct {
	Event Event
	// Handle is the handle that was called, not necessarily the one that
	// fired the guard.
	Handle Handle
	Name   string
}
