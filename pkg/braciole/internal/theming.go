package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the gadget screens.
type Theme struct {
	TextColor       sdl.Color // Default text color
	DimColor        sdl.Color // Secondary text: labels, dates, hints
	AccentColor     sdl.Color // Navigation hints, wind readings
	WarmColor       sdl.Color // Temperatures, sun icon, BTC
	CoolColor       sdl.Color // Weather descriptions, humidity, ETH
	AlertColor      sdl.Color // Backspace key, error states
	ConfirmColor    sdl.Color // Submit key, submenu hints
	StormColor      sdl.Color // Thunderstorm cloud fill
	BackgroundColor sdl.Color // Screen background
	FontPath        string    // Path to the UI font, empty for the embedded font
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the stock gadget palette.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		TextColor:       HexToColor(0xFFFFFF),
		DimColor:        HexToColor(0xB4B4B4),
		AccentColor:     HexToColor(0x0096FF),
		WarmColor:       HexToColor(0xFFFF00),
		CoolColor:       HexToColor(0x0096FF),
		AlertColor:      HexToColor(0xFF0000),
		ConfirmColor:    HexToColor(0x00FF00),
		StormColor:      HexToColor(0x003264),
		BackgroundColor: HexToColor(0x000000),
		FontPath:        fontPath,
	}
}

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
