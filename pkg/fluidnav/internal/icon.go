package internal

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/fluidnav/pkg/fluidnav/internal/icons"
)

// IconTexture returns a cached size×size texture of the named icon tinted with color.
func IconTexture(renderer *sdl.Renderer, name string, size int32, color sdl.Color) (CachedTexture, error) {
	key := fmt.Sprintf("%s|%d|%d,%d,%d,%d", name, size, color.R, color.G, color.B, color.A)
	if cached, ok := iconCache.Get(key); ok {
		return cached, nil
	}

	img, err := icons.Rasterize(name, int(size), int(size), ToNRGBA(color))
	if err != nil {
		return CachedTexture{}, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		size, size, 32, int32(img.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon surface %s: %w", name, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon texture %s: %w", name, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	cached := CachedTexture{Texture: texture, W: size, H: size}
	iconCache.Set(key, cached)
	return cached, nil
}

// RenderIcon draws the named icon centred in rect at size.
func RenderIcon(renderer *sdl.Renderer, name string, size int32, color sdl.Color, rect sdl.Rect) {
	tex, err := IconTexture(renderer, name, size, color)
	if err != nil {
		GetInternalLogger().Debug("Icon render failed", "icon", name, "error", err)
		return
	}
	dst := sdl.Rect{
		X: rect.X + (rect.W-tex.W)/2,
		Y: rect.Y + (rect.H-tex.H)/2,
		W: tex.W,
		H: tex.H,
	}
	renderer.Copy(tex.Texture, nil, &dst)
}
