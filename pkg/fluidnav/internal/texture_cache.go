package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// CachedTexture is a texture with the size it was created at.
type CachedTexture struct {
	Texture *sdl.Texture
	W       int32
	H       int32
}

// TextureCache keeps rendered text and icons so they are not rebuilt every frame.
// The least recently used entry is destroyed when the cache is full.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture, true
	}
	return CachedTexture{}, false
}

func (c *TextureCache) Set(key string, texture CachedTexture) {
	if old, exists := c.textures[key]; exists {
		if old.Texture != nil && old.Texture != texture.Texture {
			old.Texture.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture.Texture != nil {
			texture.Texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture.Texture != nil {
			texture.Texture.Destroy()
		}
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}

var (
	textCache  = NewTextureCache()
	iconCache  = NewTextureCacheWithSize(16)
	imageCache = NewTextureCacheWithSize(16)
)

// ClearTextureCaches destroys every cached text, icon and image texture.
func ClearTextureCaches() {
	textCache.Destroy()
	iconCache.Destroy()
	imageCache.Destroy()
}
