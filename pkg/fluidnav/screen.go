package fluidnav

import (
	"context"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/animation"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/navigation"
)

// Screen is a piece of content the navigation stack can show.
// Render is called every frame with the area the screen owns.
type Screen interface {
	Render(rc *RenderContext)
}

// Tappable is implemented by screens that react to taps and clicks.
// HandleTap returns true when it consumed the tap.
type Tappable interface {
	HandleTap(rc *RenderContext, x, y int32) bool
}

// Actions is the navigation bundle screens reach through their RenderContext.
type Actions = navigation.Actions[Screen]

// Transition selects how a screen animates in and out.
type Transition = navigation.Transition

// Built-in transitions.
var (
	TransitionSlide           = navigation.Slide
	TransitionFade            = navigation.Fade
	TransitionScale           = navigation.Scale
	TransitionSlideUp         = navigation.SlideUp
	TransitionFullScreenCover = navigation.FullScreenCover
	TransitionSheet           = navigation.Sheet
)

// CustomTransition builds a transition from an insertion and a removal effect.
func CustomTransition(insertion, removal animation.Effect) Transition {
	return navigation.Custom(insertion, removal)
}

// ParseTransition resolves a transition name such as "slide" or "sheet".
func ParseTransition(name string) (Transition, error) {
	return navigation.ParseTransition(name)
}

// RenderContext is what a screen is drawn with: the renderer, the rectangle
// it owns, and a context carrying the navigation actions of the enclosing
// stack.
type RenderContext struct {
	ctx      context.Context
	Renderer *sdl.Renderer
	Bounds   sdl.Rect
}

// NewRenderContext wraps ctx for drawing into bounds.
func NewRenderContext(ctx context.Context, renderer *sdl.Renderer, bounds sdl.Rect) *RenderContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RenderContext{ctx: ctx, Renderer: renderer, Bounds: bounds}
}

// Context returns the context the screen is rendered in.
func (rc *RenderContext) Context() context.Context {
	return rc.ctx
}

// Actions returns the navigation actions of the nearest enclosing stack.
// Outside any stack every action is a no-op.
func (rc *RenderContext) Actions() Actions {
	return navigation.ActionsFrom[Screen](rc.ctx)
}

// WithBounds returns a copy of rc drawing into bounds.
func (rc *RenderContext) WithBounds(bounds sdl.Rect) *RenderContext {
	out := *rc
	out.Bounds = bounds
	return &out
}

// WithActions returns a copy of rc whose descendants see actions.
func (rc *RenderContext) WithActions(actions Actions) *RenderContext {
	out := *rc
	out.ctx = navigation.WithActions(rc.ctx, actions)
	return &out
}

// ScreenFunc adapts a plain function to Screen. Each call returns a distinct
// screen, so the same function can be pushed twice.
func ScreenFunc(fn func(rc *RenderContext)) Screen {
	return &funcScreen{render: fn}
}

type funcScreen struct {
	render func(rc *RenderContext)
}

func (s *funcScreen) Render(rc *RenderContext) {
	if s.render != nil {
		s.render(rc)
	}
}

func contains(r sdl.Rect, x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	return p.InRect(&r)
}
