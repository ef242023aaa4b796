package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultTextCacheSize = 48

// TextCache renders strings to textures and keeps the most recently used
// ones alive. The clock screen redraws every second, so without caching the
// static labels would be re-rasterized on every redraw.
type TextCache struct {
	textures map[string]*sdl.Texture
	order    []string // insertion order for LRU eviction
	maxSize  int
}

// NewTextCache creates a TextCache with the default capacity.
func NewTextCache() *TextCache {
	return &TextCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, defaultTextCacheSize),
		maxSize:  defaultTextCacheSize,
	}
}

func textKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p|%02x%02x%02x|%s", font, color.R, color.G, color.B, text)
}

// Texture returns a texture for text, rendering and caching it on a miss.
// Returns nil when rasterization fails; callers skip drawing in that case.
func (c *TextCache) Texture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) *sdl.Texture {
	key := textKey(font, text, color)
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture
}

// Draw blits text with its top-left corner at (x, y).
func (c *TextCache) Draw(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	texture := c.Texture(renderer, font, text, color)
	if texture == nil {
		return
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
}

// DrawCentered blits text horizontally centered in the given width at y.
func (c *TextCache) DrawCentered(renderer *sdl.Renderer, font *ttf.Font, text string, width, y int32, color sdl.Color) {
	texture := c.Texture(renderer, font, text, color)
	if texture == nil {
		return
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: (width - w) / 2, Y: y, W: w, H: h})
}

func (c *TextCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
