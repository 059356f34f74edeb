package navigation

import "context"

// Actions is the navigation bundle handed to every screen under a container.
// A container rebuilds it after each state change; the functions always act
// on the live container, while CanGoBack is a snapshot taken at build time.
//
// Functions must be called from the UI thread, typically inside an input handler.
type Actions[S any] struct {
	Push             func(screen S, transition Transition)
	Pop              func()
	PopToRoot        func()
	PresentModal     func(screen S, transition Transition)
	DismissModal     func()
	DismissAllModals func()
	CanGoBack        bool
	CanDismissModal  bool
}

// EmptyActions is what a screen sees when no container is above it.
func EmptyActions[S any]() Actions[S] {
	return Actions[S]{
		Push:             func(S, Transition) {},
		Pop:              func() {},
		PopToRoot:        func() {},
		PresentModal:     func(S, Transition) {},
		DismissModal:     func() {},
		DismissAllModals: func() {},
	}
}

type actionsKey[S any] struct{}

// WithActions returns a copy of ctx carrying actions for descendants.
func WithActions[S any](ctx context.Context, actions Actions[S]) context.Context {
	return context.WithValue(ctx, actionsKey[S]{}, actions)
}

// ActionsFrom returns the nearest actions in ctx, or EmptyActions.
func ActionsFrom[S any](ctx context.Context) Actions[S] {
	if ctx != nil {
		if actions, ok := ctx.Value(actionsKey[S]{}).(Actions[S]); ok {
			return actions
		}
	}
	return EmptyActions[S]()
}
