package fluidnav

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/animation"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

type manualScheduler struct {
	fns []func()
}

func (m *manualScheduler) AfterFunc(_ time.Duration, fn func()) {
	m.fns = append(m.fns, fn)
}

func (m *manualScheduler) fire() {
	fns := m.fns
	m.fns = nil
	for _, fn := range fns {
		fn()
	}
}

type tapRecorder struct {
	taps []sdl.Point
}

func (t *tapRecorder) Render(*RenderContext) {}

func (t *tapRecorder) HandleTap(_ *RenderContext, x, y int32) bool {
	t.taps = append(t.taps, sdl.Point{X: x, Y: y})
	return true
}

var testBounds = sdl.Rect{X: 0, Y: 0, W: 640, H: 480}

type harness struct {
	stack *NavigationStack
	sched *manualScheduler
	now   time.Time
	root  *tapRecorder
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{sched: &manualScheduler{}, now: time.Unix(1000, 0), root: &tapRecorder{}}
	opts = append([]Option{
		WithScheduler(h.sched),
		WithClock(func() time.Time { return h.now }),
	}, opts...)
	h.stack = NewNavigationStack(h.root, opts...)
	h.stack.width = float64(testBounds.W)
	h.stack.lastRC = NewRenderContext(context.Background(), nil, testBounds).WithActions(h.stack.Actions())
	t.Cleanup(h.stack.Close)
	return h
}

func (h *harness) pointer(phase internal.PointerPhase, x, y int32) {
	h.stack.handlePointer(internal.PointerEvent{Phase: phase, X: x, Y: y})
}

func (h *harness) settle() {
	h.sched.fire()
	h.now = h.now.Add(time.Second)
	h.stack.Update()
}

func TestNavigationStack_PushStartsInsertionAndCover(t *testing.T) {
	h := newHarness(t)

	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)

	dir, ok := h.stack.animator.Direction(slot{index: 0})
	require.True(t, ok)
	assert.Equal(t, animation.Insertion, dir)

	dir, ok = h.stack.animator.Direction(slot{index: -1})
	require.True(t, ok)
	assert.Equal(t, animation.Removal, dir)

	size := animation.Size{W: 640, H: 480}
	f, _ := h.stack.animator.Frame(slot{index: 0}, animation.Identity(), size)
	assert.InDelta(t, 640, f.OffsetX, 0.001, "a slide starts off the trailing edge")
}

func TestNavigationStack_SwipePastThresholdPops(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()

	h.pointer(internal.PointerDown, 10, 100)
	h.pointer(internal.PointerMove, 200, 100)
	assert.True(t, h.stack.Container().Drag().IsDragging)
	h.pointer(internal.PointerUp, 200, 100)

	assert.Equal(t, 0, h.stack.Container().Depth())
	require.Len(t, h.stack.leaving, 1)

	f, _ := h.stack.animator.Frame(h.stack.leaving[0].key, animation.Identity(), animation.Size{W: 640, H: 480})
	assert.InDelta(t, 190, f.OffsetX, 0.001, "the popped screen leaves from where it was released")
	assert.Empty(t, h.root.taps)
}

func TestNavigationStack_ShortSwipeSpringsBack(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()

	h.pointer(internal.PointerDown, 10, 100)
	h.pointer(internal.PointerMove, 60, 100)
	h.pointer(internal.PointerUp, 60, 100)

	assert.Equal(t, 1, h.stack.Container().Depth())
	assert.False(t, h.stack.Container().Drag().IsDragging)
	assert.True(t, h.stack.spring.Active())
	assert.InDelta(t, 50, h.stack.spring.Value(), 0.001)

	for i := 0; i < 600 && h.stack.spring.Active(); i++ {
		h.stack.Update()
	}
	assert.False(t, h.stack.spring.Active())
}

func TestNavigationStack_SwipeDisabled(t *testing.T) {
	h := newHarness(t, WithSwipeBack(false))
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()

	h.pointer(internal.PointerDown, 10, 100)
	h.pointer(internal.PointerMove, 300, 100)
	h.pointer(internal.PointerUp, 300, 100)

	assert.Equal(t, 1, h.stack.Container().Depth())
}

func TestNavigationStack_TapReachesTopScreen(t *testing.T) {
	h := newHarness(t)

	h.pointer(internal.PointerDown, 40, 50)
	h.pointer(internal.PointerUp, 42, 51)

	require.Len(t, h.root.taps, 1)
	assert.Equal(t, sdl.Point{X: 42, Y: 51}, h.root.taps[0])
}

func TestNavigationStack_TapOutsideSheetDismisses(t *testing.T) {
	h := newHarness(t)
	sheet := &tapRecorder{}
	h.stack.Actions().PresentModal(sheet, TransitionSheet)
	h.settle()

	// Inside the sheet goes to the modal screen.
	h.pointer(internal.PointerDown, 100, 300)
	h.pointer(internal.PointerUp, 100, 300)
	assert.Len(t, sheet.taps, 1)
	assert.Equal(t, 1, h.stack.Container().ModalDepth())

	h.pointer(internal.PointerDown, 100, 10)
	h.pointer(internal.PointerUp, 100, 10)
	assert.Equal(t, 0, h.stack.Container().ModalDepth())
	require.Len(t, h.stack.leaving, 1)
	assert.True(t, h.stack.leaving[0].key.modal)
	assert.Empty(t, h.root.taps)
}

func TestNavigationStack_CoverCloseControl(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().PresentModal(&tapRecorder{}, TransitionFullScreenCover)
	h.settle()

	c := closeRect(testBounds)
	h.pointer(internal.PointerDown, c.X+2, c.Y+2)
	h.pointer(internal.PointerUp, c.X+2, c.Y+2)

	assert.Equal(t, 0, h.stack.Container().ModalDepth())
}

func TestNavigationStack_BackButtonPrefersModal(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()
	h.stack.Actions().PresentModal(ScreenFunc(nil), TransitionSheet)
	h.settle()

	h.stack.handleButton(constants.VirtualButtonB)
	assert.Equal(t, 0, h.stack.Container().ModalDepth())
	assert.Equal(t, 1, h.stack.Container().Depth())

	// Still animating: dropped.
	h.stack.handleButton(constants.VirtualButtonB)
	assert.Equal(t, 1, h.stack.Container().Depth())

	h.settle()
	h.stack.handleButton(constants.VirtualButtonB)
	assert.Equal(t, 0, h.stack.Container().Depth())
}

func TestNavigationStack_PopToRootAndDismissAll(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 3; i++ {
		h.stack.Actions().Push(ScreenFunc(nil), TransitionFade)
		h.settle()
	}
	h.stack.Actions().PresentModal(ScreenFunc(nil), TransitionSheet)
	h.settle()
	h.stack.Actions().PresentModal(ScreenFunc(nil), TransitionFullScreenCover)
	h.settle()

	h.stack.handleButton(constants.VirtualButtonSelect)
	assert.Equal(t, 0, h.stack.Container().ModalDepth())
	h.settle()

	h.stack.handleButton(constants.VirtualButtonL1)
	assert.Equal(t, 0, h.stack.Container().Depth())
	require.Len(t, h.stack.leaving, 1, "only the visible screen animates out")
}

func TestNavigationStack_UpdateRetiresLeavingLayers(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()
	h.stack.Actions().Pop()
	require.Len(t, h.stack.leaving, 1)

	h.now = h.now.Add(100 * time.Millisecond)
	h.stack.Update()
	assert.Len(t, h.stack.leaving, 1)

	h.now = h.now.Add(time.Second)
	h.stack.Update()
	assert.Empty(t, h.stack.leaving)
	assert.False(t, h.stack.animator.Active())
}

func TestNavigationStack_TouchSamplesBecomePointers(t *testing.T) {
	h := newHarness(t)

	h.stack.handleTouch(0.5, 0.5, true)
	h.stack.handleTouch(0.5, 0.5, false)

	require.Len(t, h.root.taps, 1)
	assert.Equal(t, sdl.Point{X: 320, Y: 240}, h.root.taps[0])
}

func TestModalRect(t *testing.T) {
	sheet := modalRect(navigation.ModalSheet, testBounds)
	assert.Equal(t, sdl.Rect{X: 0, Y: 48, W: 640, H: 432}, sheet)
	assert.Equal(t, testBounds, modalRect(navigation.ModalFullScreenCover, testBounds))
}

func TestNavigationButton_Activate(t *testing.T) {
	h := newHarness(t)

	NavigationButton{Destination: ScreenFunc(nil), Transition: TransitionScale}.Activate(h.stack.Actions())
	assert.Equal(t, 1, h.stack.Container().Depth())
	h.settle()

	NavigationButton{Destination: ScreenFunc(nil), Transition: TransitionSheet}.Activate(h.stack.Actions())
	assert.Equal(t, 1, h.stack.Container().Depth())
	assert.Equal(t, 1, h.stack.Container().ModalDepth())
	h.settle()

	NavigationButton{Transition: TransitionSlide}.Activate(h.stack.Actions())
	assert.Equal(t, 1, h.stack.Container().Depth(), "no destination, no navigation")
}

func TestNavigationBar_BackTap(t *testing.T) {
	h := newHarness(t)
	h.stack.Actions().Push(ScreenFunc(nil), TransitionSlide)
	h.settle()

	barRect := sdl.Rect{X: 0, Y: 0, W: 640, H: 44}
	rc := NewRenderContext(context.Background(), nil, barRect).WithActions(h.stack.Actions())

	bar := NavigationBar{ShowBackButton: true}
	assert.False(t, bar.HandleTap(rc, 600, 20), "trailing slot is empty")
	assert.True(t, bar.HandleTap(rc, 30, 20))
	assert.Equal(t, 0, h.stack.Container().Depth())

	h.settle()
	rc = rc.WithActions(h.stack.Actions())
	leading := &tapRecorder{}
	bar = NavigationBar{ShowBackButton: true, Leading: leading}
	assert.True(t, bar.HandleTap(rc, 30, 20), "at the root the leading slot gets the tap")
	assert.Len(t, leading.taps, 1)
}

func TestVStackLayout(t *testing.T) {
	v := VStack(10, Row{Height: 50}, Row{}, Row{}).(*vstack)

	rects := v.layout(sdl.Rect{X: 0, Y: 0, W: 100, H: 300})
	require.Len(t, rects, 3)
	assert.Equal(t, sdl.Rect{X: 0, Y: 0, W: 100, H: 50}, rects[0])
	assert.Equal(t, sdl.Rect{X: 0, Y: 60, W: 100, H: 115}, rects[1])
	assert.Equal(t, sdl.Rect{X: 0, Y: 185, W: 100, H: 115}, rects[2])
}

func TestRenderContextWithoutStack(t *testing.T) {
	rc := NewRenderContext(nil, nil, testBounds)

	actions := rc.Actions()
	assert.False(t, actions.CanGoBack)
	assert.NotPanics(t, func() {
		actions.Push(ScreenFunc(nil), TransitionSlide)
		actions.Pop()
		actions.DismissAllModals()
	})
}
