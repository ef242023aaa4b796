package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer driving the round panel.
// The renderer always works in the 240x240 logical space; SDL scales it
// to the actual surface.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) *Window {
	width, height := constants.DisplayWidth, constants.DisplayHeight
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false

		// Dev windows default to a 2x scale of the panel so the round
		// layout is legible on a desktop monitor.
		width, height = devWindowSize()
		x, y = 50, 50
	}

	GetLogger().Debug("initializing SDL window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetLogger().Error("failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(constants.DisplayWidth, constants.DisplayHeight)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   win,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
}

func devWindowSize() (int32, int32) {
	width := constants.DisplayWidth * 2
	height := constants.DisplayHeight * 2

	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			width = int32(n)
		} else {
			GetLogger().Warn("invalid WINDOW_WIDTH; using default", "value", v, "error", err)
		}
	}

	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			height = int32(n)
		} else {
			GetLogger().Warn("invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
		}
	}

	return width, height
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the singleton window. Valid after Init.
func GetWindow() *Window {
	return window
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
