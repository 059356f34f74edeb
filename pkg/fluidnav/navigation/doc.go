// Package navigation is the state machine behind an animated navigation stack.
//
// It has no rendering dependency. A Container owns the pushed screens, the
// modal stack, the animation lock and the swipe-back drag state; the
// presentation layer observes its Events and asks it for a Layout each frame.
//
// # Basic Usage
//
//	queue := navigation.NewMainQueue()
//	c := navigation.NewContainer[Screen](home, navigation.Config{Scheduler: queue, SwipeBack: true})
//
//	// Descendant screens find the bundle through the context they render with.
//	ctx = navigation.WithActions(ctx, c.Actions())
//	...
//	navigation.ActionsFrom[Screen](ctx).Push(detail, navigation.Slide)
//
//	// Once per frame on the UI thread:
//	queue.Drain()
//	for _, layer := range c.Layout(width) {
//	    // draw layer.Screen at layer.OffsetX with layer.Opacity
//	}
//
// # Dropped Requests
//
// While a transition animates, further push, pop and modal requests are
// dropped rather than queued. Push, Pop and friends are silent about it; the
// Try variants return ErrNavigationBusy or ErrEmptyStack.
package navigation
