package internal

import (
	"os"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL video, the window and the fonts. Must be called on the
// main thread before anything else in this package is used.
func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		GetLogger().Error("SDL init failed", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetLogger().Error("SDL_ttf init failed", "error", err)
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	window = initWindow(title, winOpts)

	initFonts(GetTheme().FontPath)
}

// SDLCleanup releases all SDL resources. Call before process exit.
func SDLCleanup() {
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
