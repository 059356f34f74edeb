package fluidnav

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

// Sentinel errors for common conditions.
var (
	// ErrNavigationBusy is returned by the Try* methods of navigation.Container
	// (reachable through NavigationStack.Container) while a transition is
	// still animating.
	ErrNavigationBusy = navigation.ErrNavigationBusy

	// ErrEmptyStack is returned when there is nothing to pop or dismiss.
	ErrEmptyStack = navigation.ErrEmptyStack

	// ErrNotInitialized means Init has not opened a window yet.
	ErrNotInitialized = errors.New("fluidnav: not initialized")
)

// InfrastructureError represents a framework-level failure (SDL would not
// start, a font or texture could not be created, the config file is broken).
// Navigation requests never produce one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fluidnav: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fluidnav: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsBusy checks if a navigation request was dropped because of a running transition.
func IsBusy(err error) bool {
	return errors.Is(err, ErrNavigationBusy)
}
