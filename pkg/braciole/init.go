// Package braciole is the UI controller for a small round touchscreen desk
// gadget. It turns raw touch samples into debounced navigation gestures
// across a two-level menu, drives a legacy-phone multitap keyboard for the
// search screen, and renders the five gadget screens through SDL.
//
// The package handles SDL initialization, touch input, theming, and the
// 100ms poll loop that owns all input state.
package braciole

import (
	"log/slog"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// Options configures braciole initialization.
type Options struct {
	WindowTitle   string                 // Window title shown in dev mode
	WindowOptions internal.WindowOptions // SDL window flags; zero value picks per-platform defaults
	FontPath      string                 // UI font; empty tries the system fallbacks
	LogPath       string                 // Full log file path; empty logs to stdout only
	LogLevel      string                 // "debug", "info", "warn" or "error"
}

// Init initializes logging, theming and the SDL window.
// Must be called on the main thread before NewController.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	internal.SetTheme(internal.DefaultTheme(options.FontPath))
	internal.Init(options.WindowTitle, options.WindowOptions)
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the shared structured logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string.
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// NewSDLTouchSource returns a touch source reading the SDL event queue
// (touchscreen through SDL, or the mouse in dev mode).
func NewSDLTouchSource() TouchSource {
	return internal.NewSDLTouchSource()
}

// NewEvdevTouchSource returns a touch source reading a Linux input device
// directly (CST816-class controllers on /dev/input/eventN).
func NewEvdevTouchSource(path string) (TouchSource, error) {
	return internal.NewEvdevTouchSource(path)
}
