package navigation

// EventKind identifies what changed in a container.
type EventKind int

const (
	EventPushed EventKind = iota
	EventPopped
	EventPoppedToRoot
	EventModalPresented
	EventModalDismissed
	EventModalsCleared
	EventDragCancelled
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventPushed:
		return "pushed"
	case EventPopped:
		return "popped"
	case EventPoppedToRoot:
		return "popped-to-root"
	case EventModalPresented:
		return "modal-presented"
	case EventModalDismissed:
		return "modal-dismissed"
	case EventModalsCleared:
		return "modals-cleared"
	case EventDragCancelled:
		return "drag-cancelled"
	case EventIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Event describes one accepted state change.
//
// For pushes and presentations Screens holds the added screen; for pops and
// dismissals it holds what was removed, root side first. Transitions is
// parallel to Screens. ReleaseOffset is set on EventDragCancelled to the
// horizontal offset the drag was let go at.
type Event[S any] struct {
	Kind          EventKind
	Screens       []S
	Transitions   []Transition
	Depth         int
	ModalDepth    int
	ReleaseOffset float64
}
