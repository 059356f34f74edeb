package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// ImageTexture returns a cached texture of the PNG or JPEG at path.
// Callers must not keep the texture across frames; the cache may evict it.
func ImageTexture(renderer *sdl.Renderer, path string) (CachedTexture, error) {
	if cached, ok := imageCache.Get(path); ok {
		return cached, nil
	}

	surface, err := img.Load(path)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("load image %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("image texture %s: %w", path, err)
	}

	cached := CachedTexture{Texture: texture, W: surface.W, H: surface.H}
	imageCache.Set(path, cached)
	return cached, nil
}
