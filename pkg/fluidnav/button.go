package fluidnav

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
)

// NavigationButton pushes Destination when tapped. Sheet and full-screen
// cover transitions present it as a modal instead.
type NavigationButton struct {
	Destination Screen
	Transition  Transition
	Label       string
	Content     Screen // Drawn instead of Label when set
}

// Activate performs the button's navigation with the given actions.
func (b NavigationButton) Activate(actions Actions) {
	if b.Destination == nil {
		return
	}
	if b.Transition.IsModal() {
		actions.PresentModal(b.Destination, b.Transition)
		return
	}
	actions.Push(b.Destination, b.Transition)
}

func (b NavigationButton) Render(rc *RenderContext) {
	if b.Content != nil {
		b.Content.Render(rc)
		return
	}

	theme := internal.GetTheme()
	inner := internal.HorizontalPadding(constants.DefaultBarPadding).Inset(rc.Bounds)
	internal.RenderText(rc.Renderer, internal.Fonts.Body, b.Label, theme.AccentColor, inner, constants.TextAlignLeft)

	if internal.Fonts.Icon != nil {
		internal.RenderText(rc.Renderer, internal.Fonts.Icon, constants.ArrowRight, theme.SeparatorColor, inner, constants.TextAlignRight)
	}

	sep := theme.SeparatorColor
	rc.Renderer.SetDrawColor(sep.R, sep.G, sep.B, sep.A)
	rc.Renderer.FillRect(&sdl.Rect{X: inner.X, Y: rc.Bounds.Y + rc.Bounds.H - 1, W: inner.W, H: 1})
}

func (b NavigationButton) HandleTap(rc *RenderContext, x, y int32) bool {
	if !contains(rc.Bounds, x, y) {
		return false
	}
	b.Activate(rc.Actions())
	return true
}
