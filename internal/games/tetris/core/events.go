package core

// EventType identifies an engine notification.
type EventType int

const (
	EventSpawned EventType = iota
	EventLocked
	EventRowsCleared
	EventGameOver
	EventResized
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventRowsCleared:
		return "rows_cleared"
	case EventGameOver:
		return "game_over"
	case EventResized:
		return "resized"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the state change it describes has
// fully completed.
type Event struct {
	Type EventType
	Tick uint64

	// Variant is set for EventSpawned and EventLocked.
	Variant Variant
	// Rows holds the cleared row indices for EventRowsCleared.
	Rows []int
	// Err holds the cause for EventGameOver.
	Err error
	// Width and Height are set for EventResized.
	Width, Height int
}

// Listener receives engine events. Listeners run synchronously inside the
// engine call that produced the event and must not call back into it.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
