package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the three sizes the screens draw with.
// Large carries the clock and temperatures, Medium the body text and key
// labels, Small the hints.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
}

// Fonts is the shared font set. Valid after Init.
var Fonts FontSet

const (
	largeFontSize  = 28
	mediumFontSize = 16
	smallFontSize  = 12
)

// fallbackFontPaths are tried in order when the theme does not name a font.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

func initFonts(fontPath string) {
	path := resolveFontPath(fontPath)
	if path == "" {
		GetLogger().Error("no usable font found", "configured", fontPath)
		os.Exit(1)
	}

	var err error
	if Fonts.LargeFont, err = ttf.OpenFont(path, largeFontSize); err != nil {
		GetLogger().Error("failed to open font", "path", path, "error", err)
		os.Exit(1)
	}
	if Fonts.MediumFont, err = ttf.OpenFont(path, mediumFontSize); err != nil {
		GetLogger().Error("failed to open font", "path", path, "error", err)
		os.Exit(1)
	}
	if Fonts.SmallFont, err = ttf.OpenFont(path, smallFontSize); err != nil {
		GetLogger().Error("failed to open font", "path", path, "error", err)
		os.Exit(1)
	}
}

func resolveFontPath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		GetLogger().Warn("configured font missing, trying fallbacks", "path", configured)
	}
	for _, p := range fallbackFontPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func closeFonts() {
	if Fonts.LargeFont != nil {
		Fonts.LargeFont.Close()
	}
	if Fonts.MediumFont != nil {
		Fonts.MediumFont.Close()
	}
	if Fonts.SmallFont != nil {
		Fonts.SmallFont.Close()
	}
}
