package fluidnav

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/icons"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/locale"
)

// NavigationBar is the strip across the top of a screen: a leading slot
// (the back button when there is somewhere to go back to), a centre slot,
// and a trailing slot, all of equal width, over a hairline separator.
type NavigationBar struct {
	BackgroundColor *sdl.Color // nil uses the theme bar color
	ShowBackButton  bool
	Leading         Screen // Drawn when the back button is not shown
	Center          Screen
	Trailing        Screen
	Height          int32 // 0 uses the configured bar height
}

const (
	backIconSize   int32 = 22
	backLabelWidth int32 = 64
)

func (b NavigationBar) height() int32 {
	if b.Height > 0 {
		return b.Height
	}
	if settings.Navigation.BarHeight > 0 {
		return settings.Navigation.BarHeight
	}
	return constants.DefaultBarHeight
}

// slots splits the bar rect into its leading, centre and trailing thirds
// after horizontal padding.
func (b NavigationBar) slots(bar sdl.Rect) (leading, center, trailing sdl.Rect) {
	inner := internal.HorizontalPadding(constants.DefaultBarPadding).Inset(bar)
	third := inner.W / 3
	leading = sdl.Rect{X: inner.X, Y: inner.Y, W: third, H: inner.H}
	center = sdl.Rect{X: inner.X + third, Y: inner.Y, W: third, H: inner.H}
	trailing = sdl.Rect{X: inner.X + 2*third, Y: inner.Y, W: inner.W - 2*third, H: inner.H}
	return leading, center, trailing
}

func (b NavigationBar) backVisible(rc *RenderContext) bool {
	return b.ShowBackButton && rc.Actions().CanGoBack
}

// backRect is the hit area of the back button inside the leading slot:
// the chevron plus the measured label, or a fixed width without a font.
func (b NavigationBar) backRect(leading sdl.Rect) sdl.Rect {
	label := internal.TextWidth(internal.Fonts.Body, internal.Localize(locale.MessageBack))
	if label == 0 {
		label = backLabelWidth
	}
	w := backIconSize + label
	if w > leading.W {
		w = leading.W
	}
	return sdl.Rect{X: leading.X, Y: leading.Y, W: w, H: leading.H}
}

// Render draws the bar into rc.Bounds, which should be exactly the bar area.
func (b NavigationBar) Render(rc *RenderContext) {
	theme := internal.GetTheme()
	bg := theme.BarBackgroundColor
	if b.BackgroundColor != nil {
		bg = *b.BackgroundColor
	}

	r := rc.Renderer
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.FillRect(&rc.Bounds)

	leading, center, trailing := b.slots(rc.Bounds)

	if b.backVisible(rc) {
		back := b.backRect(leading)
		icon := sdl.Rect{X: back.X, Y: back.Y, W: backIconSize, H: back.H}
		internal.RenderIcon(r, icons.ChevronLeft, backIconSize, theme.AccentColor, icon)
		label := sdl.Rect{X: back.X + backIconSize, Y: back.Y, W: back.W - backIconSize, H: back.H}
		internal.RenderText(r, internal.Fonts.Body, internal.Localize(locale.MessageBack), theme.AccentColor, label, constants.TextAlignLeft)
	} else if b.Leading != nil {
		b.Leading.Render(rc.WithBounds(leading))
	}

	if b.Center != nil {
		b.Center.Render(rc.WithBounds(center))
	}
	if b.Trailing != nil {
		b.Trailing.Render(rc.WithBounds(trailing))
	}

	sep := theme.SeparatorColor
	r.SetDrawColor(sep.R, sep.G, sep.B, sep.A)
	r.FillRect(&sdl.Rect{X: rc.Bounds.X, Y: rc.Bounds.Y + rc.Bounds.H - 1, W: rc.Bounds.W, H: 1})
}

// HandleTap pops when the back button is hit, otherwise forwards the tap to
// the slot under it.
func (b NavigationBar) HandleTap(rc *RenderContext, x, y int32) bool {
	leading, center, trailing := b.slots(rc.Bounds)

	if b.backVisible(rc) {
		if contains(b.backRect(leading), x, y) {
			rc.Actions().Pop()
			return true
		}
	} else if tapSlot(b.Leading, rc, leading, x, y) {
		return true
	}

	return tapSlot(b.Center, rc, center, x, y) || tapSlot(b.Trailing, rc, trailing, x, y)
}

func tapSlot(s Screen, rc *RenderContext, slot sdl.Rect, x, y int32) bool {
	if s == nil || !contains(slot, x, y) {
		return false
	}
	if t, ok := s.(Tappable); ok {
		return t.HandleTap(rc.WithBounds(slot), x, y)
	}
	return false
}

// WithNavigationBar places bar across the top of content.
func WithNavigationBar(content Screen, bar NavigationBar) Screen {
	return &barDecorated{content: content, bar: bar}
}

// WithNavigationTitle gives content a bar with a centred title and the
// back button.
func WithNavigationTitle(content Screen, title string) Screen {
	return WithNavigationBar(content, NavigationBar{
		ShowBackButton: true,
		Center:         Title(title),
	})
}

type barDecorated struct {
	content Screen
	bar     NavigationBar
}

func (d *barDecorated) split(bounds sdl.Rect) (bar, body sdl.Rect) {
	h := d.bar.height()
	if h > bounds.H {
		h = bounds.H
	}
	bar = sdl.Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: h}
	body = sdl.Rect{X: bounds.X, Y: bounds.Y + h, W: bounds.W, H: bounds.H - h}
	return bar, body
}

func (d *barDecorated) Render(rc *RenderContext) {
	bar, body := d.split(rc.Bounds)
	if d.content != nil {
		d.content.Render(rc.WithBounds(body))
	}
	d.bar.Render(rc.WithBounds(bar))
}

func (d *barDecorated) HandleTap(rc *RenderContext, x, y int32) bool {
	bar, body := d.split(rc.Bounds)
	if contains(bar, x, y) {
		return d.bar.HandleTap(rc.WithBounds(bar), x, y)
	}
	if t, ok := d.content.(Tappable); ok {
		return t.HandleTap(rc.WithBounds(body), x, y)
	}
	return false
}
