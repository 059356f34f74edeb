package navigation

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Default timing and gesture values.
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultSwipeThreshold    = 100.0

	// hiddenRootShift is how far the root slides left, as a fraction of width,
	// while something is pushed over it.
	hiddenRootShift = 0.3
	// minDragOpacity keeps a dragged screen visible mid-gesture.
	minDragOpacity = 0.3
)

// Vector is a 2D translation in container units.
type Vector struct {
	X float64
	Y float64
}

// DragState is the live swipe-back gesture on the top screen.
type DragState struct {
	Offset     Vector
	IsDragging bool
}

// ModalPresentation is one entry of the modal stack.
type ModalPresentation[S any] struct {
	ID         uuid.UUID
	Screen     S
	Transition Transition
}

// ModalStyle is the surface the top modal entry is shown on.
type ModalStyle int

const (
	ModalNone ModalStyle = iota
	ModalFullScreenCover
	ModalSheet
)

func (m ModalStyle) String() string {
	switch m {
	case ModalFullScreenCover:
		return "full-screen-cover"
	case ModalSheet:
		return "sheet"
	default:
		return "none"
	}
}

// Config tunes a Container.
type Config struct {
	AnimationDuration time.Duration // How long the animation lock is held after a change
	SwipeThreshold    float64       // Horizontal drag distance that commits a swipe-back
	SwipeBack         bool          // Whether the top screen accepts swipe-back drags
	Scheduler         Scheduler     // Where lock releases run; nil creates a MainQueue
	Logger            *slog.Logger  // Debug log of accepted and dropped requests; nil discards
}

// DefaultConfig returns the stock 300ms / 100 unit configuration with swipe-back on.
func DefaultConfig() Config {
	return Config{
		AnimationDuration: DefaultAnimationDuration,
		SwipeThreshold:    DefaultSwipeThreshold,
		SwipeBack:         true,
	}
}

type entry[S any] struct {
	screen     S
	transition Transition
}

// Container is the navigation state machine behind a stack view.
//
// It is Idle when the animation lock is free and Animating while it is held.
// Every accepted push, pop or modal change takes the lock and schedules its
// release AnimationDuration later on the Scheduler. Requests arriving while
// Animating are dropped, never queued. The plain stack and the modal stack
// share the one lock.
//
// A Container is not safe for concurrent use; call it from the UI thread.
type Container[S any] struct {
	root      S
	cfg       Config
	stack     *Stack[entry[S]]
	modals    *Stack[ModalPresentation[S]]
	animating *atomic.Bool
	drag      DragState
	observers []func(Event[S])
	queue     *MainQueue
	logger    *slog.Logger
}

// NewContainer creates an idle container showing root.
// Zero duration and threshold values in cfg fall back to the defaults.
func NewContainer[S any](root S, cfg Config) *Container[S] {
	if cfg.AnimationDuration <= 0 {
		cfg.AnimationDuration = DefaultAnimationDuration
	}
	if cfg.SwipeThreshold <= 0 {
		cfg.SwipeThreshold = DefaultSwipeThreshold
	}

	c := &Container[S]{
		root:      root,
		stack:     NewStack[entry[S]](),
		modals:    NewStack[ModalPresentation[S]](),
		animating: atomic.NewBool(false),
		logger:    cfg.Logger,
	}

	if cfg.Scheduler == nil {
		c.queue = NewMainQueue()
		cfg.Scheduler = c.queue
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.cfg = cfg

	return c
}

// Queue returns the MainQueue the container created for itself, or nil when
// a Scheduler was supplied in Config.
func (c *Container[S]) Queue() *MainQueue {
	return c.queue
}

// Config returns the effective configuration.
func (c *Container[S]) Config() Config {
	return c.cfg
}

// Root returns the root screen.
func (c *Container[S]) Root() S {
	return c.root
}

// Observe registers fn to be called after every accepted change.
// The returned function removes the observer.
func (c *Container[S]) Observe(fn func(Event[S])) func() {
	c.observers = append(c.observers, fn)
	idx := len(c.observers) - 1
	return func() {
		c.observers[idx] = nil
	}
}

// Push appends screen to the stack, or does nothing while animating.
func (c *Container[S]) Push(screen S, transition Transition) {
	_ = c.TryPush(screen, transition)
}

// Pop removes the top screen, or does nothing while animating or at the root.
func (c *Container[S]) Pop() {
	_ = c.TryPop()
}

// PopToRoot removes every pushed screen, or does nothing while animating or at the root.
func (c *Container[S]) PopToRoot() {
	_ = c.TryPopToRoot()
}

// PresentModal appends screen to the modal stack, or does nothing while animating.
func (c *Container[S]) PresentModal(screen S, transition Transition) {
	_ = c.TryPresentModal(screen, transition)
}

// DismissModal removes the top modal entry, or does nothing while animating or with no modals.
func (c *Container[S]) DismissModal() {
	_ = c.TryDismissModal()
}

// DismissAllModals clears the modal stack, or does nothing while animating or with no modals.
func (c *Container[S]) DismissAllModals() {
	_ = c.TryDismissAllModals()
}

// ModalDismissed is the hook for a user closing the presented surface.
func (c *Container[S]) ModalDismissed() {
	c.DismissModal()
}

// TryPush is Push reporting ErrNavigationBusy when the request is dropped.
func (c *Container[S]) TryPush(screen S, transition Transition) error {
	if err := c.acquire("push"); err != nil {
		return err
	}

	c.stack.Push(entry[S]{screen: screen, transition: transition})
	c.logger.Debug("Pushed screen", "transition", transition.String(), "depth", c.stack.Len())

	c.emit(Event[S]{
		Kind:        EventPushed,
		Screens:     []S{screen},
		Transitions: []Transition{transition},
	})
	c.scheduleRelease()
	return nil
}

// TryPop is Pop reporting why a request was dropped.
func (c *Container[S]) TryPop() error {
	if err := c.check("pop", c.stack.IsEmpty()); err != nil {
		return err
	}
	if err := c.acquire("pop"); err != nil {
		return err
	}

	removed, _ := c.stack.Pop()
	c.drag = DragState{}
	c.logger.Debug("Popped screen", "transition", removed.transition.String(), "depth", c.stack.Len())

	c.emit(Event[S]{
		Kind:        EventPopped,
		Screens:     []S{removed.screen},
		Transitions: []Transition{removed.transition},
	})
	c.scheduleRelease()
	return nil
}

// TryPopToRoot is PopToRoot reporting why a request was dropped.
func (c *Container[S]) TryPopToRoot() error {
	if err := c.check("pop-to-root", c.stack.IsEmpty()); err != nil {
		return err
	}
	if err := c.acquire("pop-to-root"); err != nil {
		return err
	}

	removed := c.stack.Clear()
	c.drag = DragState{}
	c.logger.Debug("Popped to root", "removed", len(removed))

	ev := Event[S]{Kind: EventPoppedToRoot}
	for _, e := range removed {
		ev.Screens = append(ev.Screens, e.screen)
		ev.Transitions = append(ev.Transitions, e.transition)
	}
	c.emit(ev)
	c.scheduleRelease()
	return nil
}

// TryPresentModal is PresentModal reporting ErrNavigationBusy when dropped.
// Entries whose transition is not a modal kind are kept but never presented.
func (c *Container[S]) TryPresentModal(screen S, transition Transition) error {
	if err := c.acquire("present-modal"); err != nil {
		return err
	}

	m := ModalPresentation[S]{ID: uuid.New(), Screen: screen, Transition: transition}
	c.modals.Push(m)
	c.logger.Debug("Presented modal", "id", m.ID.String(), "transition", transition.String(), "modal_depth", c.modals.Len())

	c.emit(Event[S]{
		Kind:        EventModalPresented,
		Screens:     []S{screen},
		Transitions: []Transition{transition},
	})
	c.scheduleRelease()
	return nil
}

// TryDismissModal is DismissModal reporting why a request was dropped.
func (c *Container[S]) TryDismissModal() error {
	if err := c.check("dismiss-modal", c.modals.IsEmpty()); err != nil {
		return err
	}
	if err := c.acquire("dismiss-modal"); err != nil {
		return err
	}

	removed, _ := c.modals.Pop()
	c.logger.Debug("Dismissed modal", "id", removed.ID.String(), "modal_depth", c.modals.Len())

	c.emit(Event[S]{
		Kind:        EventModalDismissed,
		Screens:     []S{removed.Screen},
		Transitions: []Transition{removed.Transition},
	})
	c.scheduleRelease()
	return nil
}

// TryDismissAllModals is DismissAllModals reporting why a request was dropped.
func (c *Container[S]) TryDismissAllModals() error {
	if err := c.check("dismiss-all-modals", c.modals.IsEmpty()); err != nil {
		return err
	}
	if err := c.acquire("dismiss-all-modals"); err != nil {
		return err
	}

	removed := c.modals.Clear()
	c.logger.Debug("Dismissed all modals", "removed", len(removed))

	ev := Event[S]{Kind: EventModalsCleared}
	for _, m := range removed {
		ev.Screens = append(ev.Screens, m.Screen)
		ev.Transitions = append(ev.Transitions, m.Transition)
	}
	c.emit(ev)
	c.scheduleRelease()
	return nil
}

// check rejects a pop-like request before the lock is touched.
func (c *Container[S]) check(op string, empty bool) error {
	if c.animating.Load() {
		c.logger.Debug("Dropped navigation request", "op", op, "reason", ErrNavigationBusy)
		return ErrNavigationBusy
	}
	if empty {
		c.logger.Debug("Dropped navigation request", "op", op, "reason", ErrEmptyStack)
		return ErrEmptyStack
	}
	return nil
}

func (c *Container[S]) acquire(op string) error {
	if !c.animating.CompareAndSwap(false, true) {
		c.logger.Debug("Dropped navigation request", "op", op, "reason", ErrNavigationBusy)
		return ErrNavigationBusy
	}
	return nil
}

func (c *Container[S]) scheduleRelease() {
	c.cfg.Scheduler.AfterFunc(c.cfg.AnimationDuration, func() {
		c.animating.Store(false)
		c.emit(Event[S]{Kind: EventIdle})
	})
}

func (c *Container[S]) emit(ev Event[S]) {
	ev.Depth = c.stack.Len()
	ev.ModalDepth = c.modals.Len()
	for _, fn := range c.observers {
		if fn != nil {
			fn(ev)
		}
	}
}

// IsAnimating reports whether the animation lock is held.
func (c *Container[S]) IsAnimating() bool {
	return c.animating.Load()
}

// CanGoBack is true when something is pushed and no transition is running.
func (c *Container[S]) CanGoBack() bool {
	return !c.stack.IsEmpty() && !c.animating.Load()
}

// CanDismissModal is true when a modal is stacked and no transition is running.
func (c *Container[S]) CanDismissModal() bool {
	return !c.modals.IsEmpty() && !c.animating.Load()
}

// Actions builds the bundle for the current state.
func (c *Container[S]) Actions() Actions[S] {
	return Actions[S]{
		Push:             c.Push,
		Pop:              c.Pop,
		PopToRoot:        c.PopToRoot,
		PresentModal:     c.PresentModal,
		DismissModal:     c.DismissModal,
		DismissAllModals: c.DismissAllModals,
		CanGoBack:        c.CanGoBack(),
		CanDismissModal:  c.CanDismissModal(),
	}
}

// Depth is the number of pushed screens.
func (c *Container[S]) Depth() int {
	return c.stack.Len()
}

// ModalDepth is the number of modal entries.
func (c *Container[S]) ModalDepth() int {
	return c.modals.Len()
}

// Top returns the visible pushed screen. The second result is false at the root.
func (c *Container[S]) Top() (S, bool) {
	e, ok := c.stack.Peek()
	return e.screen, ok
}

// Screens returns the pushed screens, root side first.
func (c *Container[S]) Screens() []S {
	out := make([]S, 0, c.stack.Len())
	for _, e := range c.stack.Entries() {
		out = append(out, e.screen)
	}
	return out
}

// Modals returns the modal stack, oldest first.
func (c *Container[S]) Modals() []ModalPresentation[S] {
	return c.modals.Entries()
}

// PresentedModal returns the modal entry being shown and its surface.
// Only the top entry is considered; the result is false when the modal stack
// is empty or the top entry's transition is not a modal kind.
func (c *Container[S]) PresentedModal() (ModalPresentation[S], ModalStyle, bool) {
	top, ok := c.modals.Peek()
	if !ok {
		return top, ModalNone, false
	}
	switch top.Transition.Kind {
	case KindFullScreenCover:
		return top, ModalFullScreenCover, true
	case KindSheet:
		return top, ModalSheet, true
	default:
		return top, ModalNone, false
	}
}

// Drag returns the current swipe-back state.
func (c *Container[S]) Drag() DragState {
	return c.drag
}

// SwipeEnabled reports whether the top screen currently takes swipe-back drags.
func (c *Container[S]) SwipeEnabled() bool {
	return c.cfg.SwipeBack && !c.stack.IsEmpty()
}

// DragChanged follows a rightward drag on the top screen.
// Leftward drags and drags while navigation is blocked are ignored.
func (c *Container[S]) DragChanged(translation Vector) {
	if !c.SwipeEnabled() {
		return
	}
	if translation.X <= 0 || !c.CanGoBack() {
		return
	}
	c.drag = DragState{Offset: translation, IsDragging: true}
}

// DragEnded commits a pop when the drag passed the threshold, otherwise the
// offset is reset and observers get EventDragCancelled to spring it back.
func (c *Container[S]) DragEnded(translation Vector) {
	if !c.SwipeEnabled() {
		return
	}

	released := c.drag.Offset.X
	c.drag = DragState{}

	if translation.X > c.cfg.SwipeThreshold {
		if err := c.TryPop(); err == nil {
			return
		}
	}

	if released != 0 {
		c.logger.Debug("Swipe-back cancelled", "offset", released, "threshold", c.cfg.SwipeThreshold)
		c.emit(Event[S]{Kind: EventDragCancelled, ReleaseOffset: released})
	}
}

// Layer is how one screen should be drawn this frame.
type Layer[S any] struct {
	Screen  S
	Root    bool
	Top     bool
	OffsetX float64
	Opacity float64
}

// Layout resolves the root and every pushed screen for a container of the
// given width. Every screen stays in the result so callers keep it mounted;
// hidden ones have zero opacity.
func (c *Container[S]) Layout(width float64) []Layer[S] {
	layers := make([]Layer[S], 0, c.stack.Len()+1)

	root := Layer[S]{Screen: c.root, Root: true, Top: c.stack.IsEmpty(), Opacity: 1}
	if !c.stack.IsEmpty() {
		root.Opacity = 0
		root.OffsetX = -width * hiddenRootShift
	}
	layers = append(layers, root)

	n := c.stack.Len()
	for i := 0; i < n; i++ {
		e := c.stack.At(i)
		layer := Layer[S]{Screen: e.screen}
		if i == n-1 {
			layer.Top = true
			layer.OffsetX = c.drag.Offset.X
			layer.Opacity = 1
			if c.drag.IsDragging && width > 0 {
				layer.Opacity = math.Max(minDragOpacity, 1-math.Abs(c.drag.Offset.X)/width)
			}
		}
		layers = append(layers, layer)
	}

	return layers
}

// TransitionAt returns the transition the screen at depth index i was pushed with.
func (c *Container[S]) TransitionAt(i int) Transition {
	return c.stack.At(i).transition
}
