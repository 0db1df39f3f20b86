package igraph

import "github.com/wippyai/igraph-go/abi"

// EventType identifies a handle lifecycle transition.
type EventType uint8

const (
	// EventCreated fires once a foreign init call succeeded.
	EventCreated EventType = iota
	// EventDestroyed fires after the destroy call made by Close.
	EventDestroyed
	// EventTransferred fires when ownership moves to a new wrapper.
	EventTransferred
	// EventReclaimed fires after the garbage collector destroyed a leaked handle.
	EventReclaimed
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDestroyed:
		return "destroyed"
	case EventTransferred:
		return "transferred"
	case EventReclaimed:
		return "reclaimed"
	}
	return "unknown"
}

// Event describes one lifecycle transition of a foreign handle.
type Event struct {
	Ptr  abi.Ptr
	Kind abi.Kind
	Type EventType
}

// Observer receives lifecycle events. Reclaim events are delivered from the
// runtime's cleanup goroutine, so implementations must be safe for
// concurrent use.
type Observer interface {
	OnHandleEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnHandleEvent calls f(e).
func (f ObserverFunc) OnHandleEvent(e Event) {
	f(e)
}
