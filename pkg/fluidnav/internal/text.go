package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/constants"
)

// TextTexture returns a cached texture of text drawn in color.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (CachedTexture, error) {
	if font == nil || text == "" {
		return CachedTexture{}, fmt.Errorf("text: nothing to render")
	}

	key := fmt.Sprintf("%p|%s|%d,%d,%d,%d", font, text, color.R, color.G, color.B, color.A)
	if cached, ok := textCache.Get(key); ok {
		return cached, nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("text texture: %w", err)
	}

	cached := CachedTexture{Texture: texture, W: surface.W, H: surface.H}
	textCache.Set(key, cached)
	return cached, nil
}

// RenderText draws text vertically centred in rect with the given alignment.
// Text wider than rect is clipped.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, rect sdl.Rect, align constants.TextAlign) {
	if text == "" || font == nil {
		return
	}

	tex, err := TextTexture(renderer, font, text, color)
	if err != nil {
		GetInternalLogger().Debug("Text render failed", "text", text, "error", err)
		return
	}

	w := tex.W
	if w > rect.W {
		w = rect.W
	}

	x := rect.X
	switch align {
	case constants.TextAlignCenter:
		x = rect.X + (rect.W-w)/2
	case constants.TextAlignRight:
		x = rect.X + rect.W - w
	}
	y := rect.Y + (rect.H-tex.H)/2

	src := sdl.Rect{X: 0, Y: 0, W: w, H: tex.H}
	dst := sdl.Rect{X: x, Y: y, W: w, H: tex.H}
	renderer.Copy(tex.Texture, &src, &dst)
}

// TextWidth measures text in font, or 0 when it cannot.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil || text == "" {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
