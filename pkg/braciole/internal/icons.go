package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// WeatherIcon identifies the glyph drawn for a WMO weather code class.
type WeatherIcon int

const (
	IconSun WeatherIcon = iota
	IconSunBehindCloud
	IconCloud
	IconRain
	IconSnow
	IconStorm
)

// IconForCode maps a WMO weather code to its icon class.
// Unknown codes fall back to a plain cloud.
func IconForCode(code int) WeatherIcon {
	switch code {
	case 0, 1:
		return IconSun
	case 2:
		return IconSunBehindCloud
	case 3, 45, 48:
		return IconCloud
	case 51, 53, 55, 61, 63, 65, 80, 81, 82:
		return IconRain
	case 71, 73, 75:
		return IconSnow
	case 95, 96, 99:
		return IconStorm
	default:
		return IconCloud
	}
}

// The glyphs are deliberately chunky: the panel is 240px across and the icon
// is read at arm's length.
var iconSVG = map[WeatherIcon]string{
	IconSun: `<svg viewBox="0 0 24 24"><g fill="#ffff00">
<circle cx="12" cy="12" r="5"/>
<rect x="11" y="1" width="2" height="4"/><rect x="11" y="19" width="2" height="4"/>
<rect x="1" y="11" width="4" height="2"/><rect x="19" y="11" width="4" height="2"/>
<rect x="3.5" y="3.5" width="3" height="2" transform="rotate(45 5 4.5)"/>
<rect x="17.5" y="3.5" width="3" height="2" transform="rotate(135 19 4.5)"/>
<rect x="3.5" y="18.5" width="3" height="2" transform="rotate(-45 5 19.5)"/>
<rect x="17.5" y="18.5" width="3" height="2" transform="rotate(-135 19 19.5)"/>
</g></svg>`,
	IconSunBehindCloud: `<svg viewBox="0 0 24 24">
<circle cx="8" cy="8" r="4" fill="#ffff00"/>
<path d="M6 19a4 4 0 0 1 .5-7.9A5 5 0 0 1 16 10a3.5 3.5 0 0 1 2 6.6V19z" fill="#b4b4b4"/>
</svg>`,
	IconCloud: `<svg viewBox="0 0 24 24">
<path d="M6 18a4 4 0 0 1 .5-7.9A5 5 0 0 1 16 9a3.5 3.5 0 0 1 2 6.6V18z" fill="#b4b4b4"/>
</svg>`,
	IconRain: `<svg viewBox="0 0 24 24">
<path d="M6 14a4 4 0 0 1 .5-7.9A5 5 0 0 1 16 5a3.5 3.5 0 0 1 2 6.6V14z" fill="#b4b4b4"/>
<g fill="#0096ff">
<rect x="6" y="16" width="1.5" height="6"/><rect x="11" y="17" width="1.5" height="6"/>
<rect x="16" y="16" width="1.5" height="6"/>
</g></svg>`,
	IconSnow: `<svg viewBox="0 0 24 24">
<path d="M6 14a4 4 0 0 1 .5-7.9A5 5 0 0 1 16 5a3.5 3.5 0 0 1 2 6.6V14z" fill="#b4b4b4"/>
<g fill="#ffffff">
<circle cx="7" cy="18" r="1.3"/><circle cx="12" cy="20" r="1.3"/><circle cx="17" cy="18" r="1.3"/>
</g></svg>`,
	IconStorm: `<svg viewBox="0 0 24 24">
<path d="M6 13a4 4 0 0 1 .5-7.9A5 5 0 0 1 16 4a3.5 3.5 0 0 1 2 6.6V13z" fill="#003264"/>
<path d="M13 11l-4 6h3l-2 6 5.5-7.5h-3z" fill="#ffff00"/>
</svg>`,
}

// IconCache rasterizes weather icon SVGs into SDL textures on demand.
type IconCache struct {
	size     int
	textures map[WeatherIcon]*sdl.Texture
}

// NewIconCache creates a cache producing size x size pixel icons.
func NewIconCache(size int) *IconCache {
	return &IconCache{
		size:     size,
		textures: make(map[WeatherIcon]*sdl.Texture),
	}
}

// Texture returns the texture for an icon class, rasterizing it on first use.
// Returns nil if the SVG cannot be rasterized; callers skip the icon.
func (c *IconCache) Texture(renderer *sdl.Renderer, icon WeatherIcon) *sdl.Texture {
	if texture, ok := c.textures[icon]; ok {
		return texture
	}

	texture := c.rasterize(renderer, iconSVG[icon])
	if texture != nil {
		c.textures[icon] = texture
	}
	return texture
}

func (c *IconCache) rasterize(renderer *sdl.Renderer, svg string) *sdl.Texture {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		GetLogger().Warn("bad icon svg", "error", err)
		return nil
	}

	icon.SetTarget(0, 0, float64(c.size), float64(c.size))
	rgba := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	scanner := rasterx.NewScannerGV(c.size, c.size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(c.size, c.size, scanner), 1)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(c.size), int32(c.size), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		GetLogger().Warn("icon surface failed", "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetLogger().Warn("icon texture failed", "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture
}

// Destroy releases all rasterized icon textures.
func (c *IconCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[WeatherIcon]*sdl.Texture)
}
