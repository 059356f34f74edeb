package fluidnav

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/animation"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/icons"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/locale"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

const (
	closeIconSize int32 = 28
	grabberWidth  int32 = 40
	grabberHeight int32 = 12
)

// slot identifies a drawn layer for the animator. Stack layers use their
// depth index with the root at -1; leaving layers get a sequence number.
type slot struct {
	modal   bool
	leaving bool
	index   int
}

type leavingLayer struct {
	key    slot
	screen Screen
	modal  navigation.ModalStyle
}

// NavigationStack draws a navigation.Container and feeds it input.
//
// It renders the root, the pushed screens and the presented modal, runs the
// transition animations the container's events ask for, and turns pointer
// drags into swipe-back gestures. Screens inside the stack reach its actions
// through their RenderContext.
type NavigationStack struct {
	container  *navigation.Container[Screen]
	queue      *navigation.MainQueue
	animator   *animation.Animator[slot]
	spring     *animation.SpringBack
	recognizer *navigation.DragRecognizer
	logger     *slog.Logger
	opts       stackOptions

	leaving      []leavingLayer
	leavingSeq   int
	swipeRelease float64
	width        float64

	lastRC       *RenderContext
	modalPressed bool
	touchDown    bool

	scratch       *sdl.Texture
	scratchW      int32
	scratchH      int32
	stopObserving func()
}

// NewNavigationStack creates a stack showing root.
func NewNavigationStack(root Screen, opts ...Option) *NavigationStack {
	o := defaultStackOptions()
	for _, opt := range opts {
		opt(&o)
	}

	queue := navigation.NewMainQueue()
	cfg := navigation.Config{
		AnimationDuration: o.animationDuration,
		SwipeThreshold:    o.swipeThreshold,
		SwipeBack:         o.swipeBack,
		Scheduler:         o.scheduler,
		Logger:            o.logger,
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = queue
	}

	s := &NavigationStack{
		container:  navigation.NewContainer(root, cfg),
		queue:      queue,
		recognizer: navigation.NewDragRecognizer(constants.DefaultTapSlop),
		spring:     animation.NewSpringBack(int(time.Second / constants.DefaultFrameDelay)),
		logger:     o.logger,
		opts:       o,
	}
	s.animator = animation.NewAnimator[slot](s.container.Config().AnimationDuration, o.clock)
	s.stopObserving = s.container.Observe(s.onEvent)
	return s
}

// Container exposes the state machine, for tests and advanced callers.
func (s *NavigationStack) Container() *navigation.Container[Screen] {
	return s.container
}

// Actions returns the bundle screens inside this stack see.
func (s *NavigationStack) Actions() Actions {
	return s.container.Actions()
}

func (s *NavigationStack) onEvent(ev navigation.Event[Screen]) {
	switch ev.Kind {
	case navigation.EventPushed:
		in, _ := ev.Transitions[0].Effects()
		top := ev.Depth - 1
		s.animator.Start(slot{index: top}, in, animation.Insertion)
		s.animator.Start(slot{index: top - 1}, coverEffect(top-1 < 0), animation.Removal)

	case navigation.EventPopped, navigation.EventPoppedToRoot:
		last := len(ev.Screens) - 1
		_, out := ev.Transitions[last].Effects()
		if s.swipeRelease > 0 {
			out = swipeOut(s.swipeRelease)
			s.swipeRelease = 0
		}
		s.leave(ev.Screens[last], false, navigation.ModalNone, out)
		revealed := ev.Depth - 1
		s.animator.Start(slot{index: revealed}, coverEffect(revealed < 0), animation.Insertion)

	case navigation.EventModalPresented:
		in, _ := ev.Transitions[0].Effects()
		s.animator.Start(slot{modal: true, index: ev.ModalDepth - 1}, in, animation.Insertion)

	case navigation.EventModalDismissed, navigation.EventModalsCleared:
		last := len(ev.Screens) - 1
		t := ev.Transitions[last]
		if style := modalStyle(t); style != navigation.ModalNone {
			_, out := t.Effects()
			s.leave(ev.Screens[last], true, style, out)
		}

	case navigation.EventDragCancelled:
		s.spring.Start(ev.ReleaseOffset)

	case navigation.EventIdle:
		s.logger.Debug("Navigation idle", "depth", ev.Depth, "modal_depth", ev.ModalDepth)
	}
}

func (s *NavigationStack) leave(screen Screen, modal bool, style navigation.ModalStyle, effect animation.Effect) {
	s.leavingSeq++
	key := slot{modal: modal, leaving: true, index: s.leavingSeq}
	s.leaving = append(s.leaving, leavingLayer{key: key, screen: screen, modal: style})
	s.animator.Start(key, effect, animation.Removal)
}

// coverEffect is what happens to the screen underneath a push: the root
// also slides left by the hidden-root shift.
func coverEffect(root bool) animation.Effect {
	if root {
		return animation.Combined(animation.Offset(-0.3, 0), animation.Opacity())
	}
	return animation.Opacity()
}

// swipeOut carries a released swipe from where the finger let go to the
// trailing edge.
func swipeOut(release float64) animation.Effect {
	return func(f animation.Frame, amount float64, size animation.Size) animation.Frame {
		f.OffsetX += release + (size.W-release)*amount
		return f
	}
}

func modalStyle(t Transition) navigation.ModalStyle {
	switch t.Kind {
	case navigation.KindFullScreenCover:
		return navigation.ModalFullScreenCover
	case navigation.KindSheet:
		return navigation.ModalSheet
	}
	return navigation.ModalNone
}

// Update runs queued work and retires finished animations. Render calls it.
func (s *NavigationStack) Update() {
	s.queue.Drain()

	if done := s.animator.Prune(); len(done) > 0 {
		finished := make(map[slot]bool, len(done))
		for _, k := range done {
			finished[k] = true
		}
		kept := s.leaving[:0]
		for _, l := range s.leaving {
			if !finished[l.key] {
				kept = append(kept, l)
			}
		}
		s.leaving = kept
	}

	if s.spring.Active() && !s.container.Drag().IsDragging {
		s.spring.Step()
	}
}

// Render draws the whole stack into rc.Bounds.
func (s *NavigationStack) Render(rc *RenderContext) {
	s.Update()

	inner := rc.WithActions(s.container.Actions())
	s.lastRC = inner
	bounds := inner.Bounds
	s.width = float64(bounds.W)

	r := inner.Renderer
	hadClip := r.IsClipEnabled()
	prevClip := r.GetClipRect()
	r.SetClipRect(&bounds)
	defer func() {
		if hadClip {
			r.SetClipRect(&prevClip)
		} else {
			r.SetClipRect(nil)
		}
	}()

	bg := internal.GetTheme().BackgroundColor
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.FillRect(&bounds)

	drag := s.container.Drag()
	for i, layer := range s.container.Layout(s.width) {
		key := slot{index: i - 1}
		f, animating := s.animator.Frame(key, animation.Identity(), s.size(bounds))
		if !animating {
			f = animation.Frame{OffsetX: layer.OffsetX, Scale: 1, Opacity: layer.Opacity}
			if layer.Top && !drag.IsDragging && s.spring.Active() {
				f.OffsetX += s.spring.Value()
			}
		}
		s.drawLayer(inner, layer.Screen, f, bounds, nil)
	}

	for _, l := range s.leaving {
		if !l.key.modal {
			f, _ := s.animator.Frame(l.key, animation.Identity(), s.size(bounds))
			s.drawLayer(inner, l.screen, f, bounds, nil)
		}
	}

	if m, style, ok := s.container.PresentedModal(); ok {
		key := slot{modal: true, index: s.container.ModalDepth() - 1}
		rect := modalRect(style, bounds)
		f, _ := s.animator.Frame(key, animation.Identity(), s.size(rect))
		s.drawModal(inner, m.Screen, style, f, bounds)
	}

	for _, l := range s.leaving {
		if l.key.modal {
			rect := modalRect(l.modal, bounds)
			f, _ := s.animator.Frame(l.key, animation.Identity(), s.size(rect))
			s.drawModal(inner, l.screen, l.modal, f, bounds)
		}
	}

	if s.opts.debugOverlay {
		s.drawDebugOverlay(inner)
	}
}

func (s *NavigationStack) size(rect sdl.Rect) animation.Size {
	return animation.Size{W: float64(rect.W), H: float64(rect.H)}
}

func modalRect(style navigation.ModalStyle, bounds sdl.Rect) sdl.Rect {
	if style != navigation.ModalSheet {
		return bounds
	}
	h := bounds.H * constants.DefaultSheetHeightPercent / 100
	return sdl.Rect{X: bounds.X, Y: bounds.Y + bounds.H - h, W: bounds.W, H: h}
}

func (s *NavigationStack) drawModal(rc *RenderContext, screen Screen, style navigation.ModalStyle, f animation.Frame, bounds sdl.Rect) {
	rect := modalRect(style, bounds)
	theme := internal.GetTheme()

	if style == navigation.ModalSheet {
		shown := 1.0
		if rect.H > 0 {
			shown = math.Max(0, 1-f.OffsetY/float64(rect.H))
		}
		scrim := theme.ScrimColor
		rc.Renderer.SetDrawColor(scrim.R, scrim.G, scrim.B, uint8(float64(scrim.A)*shown*f.Opacity))
		rc.Renderer.FillRect(&bounds)

		s.drawLayer(rc, screen, f, rect, func(local *RenderContext) {
			grab := sdl.Rect{X: (local.Bounds.W - grabberWidth) / 2, Y: 4, W: grabberWidth, H: grabberHeight}
			internal.RenderIcon(local.Renderer, icons.Grabber, grabberWidth, theme.SeparatorColor, grab)
		})
		return
	}

	s.drawLayer(rc, screen, f, rect, func(local *RenderContext) {
		internal.RenderIcon(local.Renderer, icons.Close, closeIconSize, theme.AccentColor, closeRect(local.Bounds))
	})
}

// closeRect is the close control of a full-screen cover, top right.
func closeRect(bounds sdl.Rect) sdl.Rect {
	pad := constants.DefaultBarPadding
	return sdl.Rect{
		X: bounds.X + bounds.W - closeIconSize - pad,
		Y: bounds.Y + pad/2,
		W: closeIconSize,
		H: closeIconSize,
	}
}

// drawLayer renders screen into an offscreen texture the size of rect and
// composites it with the frame's offset, scale and opacity. overlay, if set,
// draws on top of the screen in the same local coordinates.
func (s *NavigationStack) drawLayer(rc *RenderContext, screen Screen, f animation.Frame, rect sdl.Rect, overlay func(*RenderContext)) {
	if f.Opacity <= 0 || f.Scale <= 0 || screen == nil {
		return
	}

	r := rc.Renderer
	tex, err := s.scratchTexture(r, rect.W, rect.H)
	if err != nil {
		// No render targets: draw in place without the effect.
		s.logger.Debug("Layer texture unavailable", "error", err)
		screen.Render(rc.WithBounds(rect))
		return
	}

	prev := r.GetRenderTarget()
	if err := r.SetRenderTarget(tex); err != nil {
		s.logger.Debug("Set render target failed", "error", err)
		screen.Render(rc.WithBounds(rect))
		return
	}

	local := rc.WithBounds(sdl.Rect{X: 0, Y: 0, W: rect.W, H: rect.H})
	bg := internal.GetTheme().BackgroundColor
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.Clear()
	screen.Render(local)
	if overlay != nil {
		overlay(local)
	}

	r.SetRenderTarget(prev)

	w := int32(math.Round(float64(rect.W) * f.Scale))
	h := int32(math.Round(float64(rect.H) * f.Scale))
	dst := sdl.Rect{
		X: rect.X + int32(math.Round(f.OffsetX)) + (rect.W-w)/2,
		Y: rect.Y + int32(math.Round(f.OffsetY)) + (rect.H-h)/2,
		W: w,
		H: h,
	}
	src := sdl.Rect{X: 0, Y: 0, W: rect.W, H: rect.H}
	tex.SetAlphaMod(uint8(math.Round(math.Min(1, f.Opacity) * 255)))
	r.Copy(tex, &src, &dst)
}

// scratchTexture returns a target texture at least w×h, recreating it when
// the stack grows.
func (s *NavigationStack) scratchTexture(r *sdl.Renderer, w, h int32) (*sdl.Texture, error) {
	if s.scratch != nil && s.scratchW >= w && s.scratchH >= h {
		return s.scratch, nil
	}
	if s.scratch != nil {
		s.scratch.Destroy()
		s.scratch = nil
	}

	tex, err := r.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		return nil, NewInfrastructureError("create_layer_texture", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	s.scratch, s.scratchW, s.scratchH = tex, w, h
	return tex, nil
}

func (s *NavigationStack) drawDebugOverlay(rc *RenderContext) {
	text := internal.LocalizePlural(locale.MessageDepthSummary, s.container.Depth())
	if s.container.IsAnimating() {
		text += " *"
	}
	b := rc.Bounds
	rect := sdl.Rect{X: b.X + constants.DefaultBarPadding, Y: b.Y + b.H - 32, W: b.W / 2, H: 32}
	internal.RenderText(rc.Renderer, internal.Fonts.Body, text, internal.GetTheme().SeparatorColor, rect, constants.TextAlignLeft)
}

// HandleEvent feeds one SDL event to the stack. Keyboard and controller
// buttons navigate: B goes back or dismisses the presented modal, L1 pops to
// the root, Select dismisses every modal. Pointer drags on the top screen
// swipe back, and taps reach the screen under them.
func (s *NavigationStack) HandleEvent(event sdl.Event) {
	if button, ok := internal.ButtonFromEvent(event); ok {
		s.handleButton(button)
		return
	}
	if p, ok := internal.PointerFromEvent(event); ok {
		s.handlePointer(p)
	}
}

func (s *NavigationStack) handleButton(button constants.VirtualButton) {
	s.logger.Debug("Button", "button", button.GetName())

	switch button {
	case constants.VirtualButtonB:
		if _, _, ok := s.container.PresentedModal(); ok {
			s.container.ModalDismissed()
			return
		}
		s.container.Pop()
	case constants.VirtualButtonL1:
		s.container.PopToRoot()
	case constants.VirtualButtonSelect:
		s.container.DismissAllModals()
	}
}

func (s *NavigationStack) handlePointer(p internal.PointerEvent) {
	if s.lastRC == nil {
		return
	}
	v := navigation.Vector{X: float64(p.X), Y: float64(p.Y)}

	if _, _, ok := s.container.PresentedModal(); ok {
		s.recognizer.Cancel()
		switch p.Phase {
		case internal.PointerDown:
			s.modalPressed = true
		case internal.PointerUp:
			if s.modalPressed {
				s.modalPressed = false
				s.handleModalTap(p.X, p.Y)
			}
		}
		return
	}

	switch p.Phase {
	case internal.PointerDown:
		s.recognizer.Down(v)
	case internal.PointerMove:
		s.recognizer.Move(v, s.container)
	case internal.PointerUp:
		s.swipeRelease = s.container.Drag().Offset.X
		tap := s.recognizer.Up(v, s.container)
		s.swipeRelease = 0
		if tap {
			s.handleTap(p.X, p.Y)
		}
	}
}

func (s *NavigationStack) handleTap(x, y int32) {
	layers := s.container.Layout(s.width)
	top := layers[len(layers)-1]
	if t, ok := top.Screen.(Tappable); ok {
		t.HandleTap(s.lastRC, x, y)
	}
}

func (s *NavigationStack) handleModalTap(x, y int32) {
	m, style, _ := s.container.PresentedModal()
	rect := modalRect(style, s.lastRC.Bounds)

	switch style {
	case navigation.ModalSheet:
		if !contains(rect, x, y) {
			s.container.ModalDismissed()
			return
		}
	case navigation.ModalFullScreenCover:
		if contains(closeRect(rect), x, y) {
			s.container.ModalDismissed()
			return
		}
	}

	if t, ok := m.Screen.(Tappable); ok {
		t.HandleTap(s.lastRC.WithBounds(rect), x, y)
	}
}

// handleTouch turns a normalised evdev sample into a pointer event.
func (s *NavigationStack) handleTouch(x, y float64, down bool) {
	if s.lastRC == nil {
		return
	}
	b := s.lastRC.Bounds
	p := internal.PointerEvent{
		X: b.X + int32(x*float64(b.W)),
		Y: b.Y + int32(y*float64(b.H)),
	}
	switch {
	case down && !s.touchDown:
		p.Phase = internal.PointerDown
	case down:
		p.Phase = internal.PointerMove
	default:
		p.Phase = internal.PointerUp
	}
	s.touchDown = down
	s.handlePointer(p)
}

// Close releases the stack's textures and stops its queue.
func (s *NavigationStack) Close() {
	if s.stopObserving != nil {
		s.stopObserving()
		s.stopObserving = nil
	}
	if s.scratch != nil {
		s.scratch.Destroy()
		s.scratch = nil
	}
	s.queue.Close()
}

// renderContext builds the context for one frame of the window.
func renderContext(ctx context.Context, window *internal.Window) *RenderContext {
	return NewRenderContext(ctx, window.Renderer, window.Bounds())
}
