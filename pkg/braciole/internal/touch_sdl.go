package internal

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLTouchSource reads touch input from the SDL event queue. On the device
// this covers touchscreen drivers exposed through SDL; in dev mode the mouse
// stands in for a finger (button held = contact).
type SDLTouchSource struct {
	pressed bool
	x, y    int32
	closed  bool
}

// NewSDLTouchSource creates a touch source backed by the SDL event queue.
// The window must already be initialized.
func NewSDLTouchSource() *SDLTouchSource {
	return &SDLTouchSource{}
}

// Poll drains pending SDL events and reports the current contact, if any.
func (s *SDLTouchSource) Poll() (TouchSample, bool, error) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.closed = true

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				s.pressed = e.State == sdl.PRESSED
				s.x, s.y = windowToPanel(e.X, e.Y)
			}

		case *sdl.MouseMotionEvent:
			if s.pressed {
				s.x, s.y = windowToPanel(e.X, e.Y)
			}

		case *sdl.TouchFingerEvent:
			switch e.Type {
			case sdl.FINGERDOWN, sdl.FINGERMOTION:
				s.pressed = true
				s.x = int32(e.X * float32(constants.DisplayWidth))
				s.y = int32(e.Y * float32(constants.DisplayHeight))
			case sdl.FINGERUP:
				s.pressed = false
			}
		}
	}

	if s.closed {
		return TouchSample{}, false, ErrDisplayClosed
	}
	if !s.pressed {
		return TouchSample{}, false, nil
	}
	return TouchSample{X: s.x, Y: s.y}, true, nil
}

// Close is a no-op; the SDL event queue belongs to the window.
func (s *SDLTouchSource) Close() error {
	return nil
}

// windowToPanel maps window mouse coordinates into the 240x240 logical space.
// Mouse events arrive in window pixels even with a logical renderer size.
func windowToPanel(x, y int32) (int32, int32) {
	w, h := GetWindow().Window.GetSize()
	if w <= 0 || h <= 0 {
		return x, y
	}
	return x * constants.DisplayWidth / w, y * constants.DisplayHeight / h
}
