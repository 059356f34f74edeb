package navigation

import "errors"

// Sentinel errors returned by the Try* operations of a Container.
// The Actions bundle discards them, so views see rejected requests as no-ops.
var (
	// ErrNavigationBusy means a transition is still animating and the request was dropped.
	ErrNavigationBusy = errors.New("navigation: transition in progress")

	// ErrEmptyStack means there was nothing to pop or dismiss.
	ErrEmptyStack = errors.New("navigation: stack is empty")
)

// IsBusy checks if err is a request dropped because of a running transition.
func IsBusy(err error) bool {
	return errors.Is(err, ErrNavigationBusy)
}
