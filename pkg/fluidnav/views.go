package fluidnav

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal"
)

// Fill paints its whole area with color.
func Fill(color sdl.Color) Screen {
	return &fillView{color: color}
}

type fillView struct {
	color sdl.Color
}

func (v *fillView) Render(rc *RenderContext) {
	rc.Renderer.SetDrawColor(v.color.R, v.color.G, v.color.B, v.color.A)
	rc.Renderer.FillRect(&rc.Bounds)
}

// Text draws a single centred line in the body font.
func Text(text string) Screen {
	return &textView{text: text, align: constants.TextAlignCenter}
}

// Title draws a single centred line in the bold title font.
func Title(text string) Screen {
	return &textView{text: text, align: constants.TextAlignCenter, title: true}
}

type textView struct {
	text  string
	align constants.TextAlign
	title bool
}

func (v *textView) font() *ttf.Font {
	if v.title {
		return internal.Fonts.Title
	}
	return internal.Fonts.Body
}

func (v *textView) Render(rc *RenderContext) {
	internal.RenderText(rc.Renderer, v.font(), v.text, internal.GetTheme().TextColor, rc.Bounds, v.align)
}

// Image draws the PNG or JPEG at path scaled to fit, keeping its aspect ratio.
// The decoded texture lives in the shared texture cache and is freed by Close.
func Image(path string) Screen {
	return &imageView{path: path}
}

type imageView struct {
	path   string
	failed bool
}

func (v *imageView) Render(rc *RenderContext) {
	if v.failed {
		return
	}

	tex, err := internal.ImageTexture(rc.Renderer, v.path)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load image", "path", v.path, "error", err)
		v.failed = true
		return
	}
	if tex.W == 0 || tex.H == 0 {
		return
	}

	b := rc.Bounds
	scale := min(float64(b.W)/float64(tex.W), float64(b.H)/float64(tex.H))
	w, h := int32(float64(tex.W)*scale), int32(float64(tex.H)*scale)
	dst := sdl.Rect{X: b.X + (b.W-w)/2, Y: b.Y + (b.H-h)/2, W: w, H: h}
	rc.Renderer.Copy(tex.Texture, nil, &dst)
}

// Background draws content over a solid color.
func Background(color sdl.Color, content Screen) Screen {
	return &backgroundView{color: color, content: content}
}

type backgroundView struct {
	color   sdl.Color
	content Screen
}

func (v *backgroundView) Render(rc *RenderContext) {
	rc.Renderer.SetDrawColor(v.color.R, v.color.G, v.color.B, v.color.A)
	rc.Renderer.FillRect(&rc.Bounds)
	if v.content != nil {
		v.content.Render(rc)
	}
}

func (v *backgroundView) HandleTap(rc *RenderContext, x, y int32) bool {
	if t, ok := v.content.(Tappable); ok {
		return t.HandleTap(rc, x, y)
	}
	return false
}

// Row is one child of a VStack. A zero Height shares the space left over
// by fixed rows equally with the other zero-height rows.
type Row struct {
	Height int32
	Screen Screen
}

// VStack lays rows out top to bottom.
func VStack(spacing int32, rows ...Row) Screen {
	return &vstack{spacing: spacing, rows: rows}
}

type vstack struct {
	spacing int32
	rows    []Row
}

func (v *vstack) layout(bounds sdl.Rect) []sdl.Rect {
	if len(v.rows) == 0 {
		return nil
	}

	fixed, flexible := int32(0), int32(0)
	for _, r := range v.rows {
		if r.Height > 0 {
			fixed += r.Height
		} else {
			flexible++
		}
	}
	fixed += v.spacing * int32(len(v.rows)-1)

	var share int32
	if flexible > 0 && bounds.H > fixed {
		share = (bounds.H - fixed) / flexible
	}

	rects := make([]sdl.Rect, len(v.rows))
	y := bounds.Y
	for i, r := range v.rows {
		h := r.Height
		if h <= 0 {
			h = share
		}
		rects[i] = sdl.Rect{X: bounds.X, Y: y, W: bounds.W, H: h}
		y += h + v.spacing
	}
	return rects
}

func (v *vstack) Render(rc *RenderContext) {
	for i, rect := range v.layout(rc.Bounds) {
		if s := v.rows[i].Screen; s != nil {
			s.Render(rc.WithBounds(rect))
		}
	}
}

func (v *vstack) HandleTap(rc *RenderContext, x, y int32) bool {
	for i, rect := range v.layout(rc.Bounds) {
		if !contains(rect, x, y) {
			continue
		}
		if t, ok := v.rows[i].Screen.(Tappable); ok {
			return t.HandleTap(rc.WithBounds(rect), x, y)
		}
		return false
	}
	return false
}
