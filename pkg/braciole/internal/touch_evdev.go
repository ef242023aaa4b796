package internal

import (
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// EvdevTouchSource reads a CST816-class touch controller directly from a
// Linux input device. A reader goroutine tracks the latest contact state so
// Poll never blocks the tick loop.
type EvdevTouchSource struct {
	dev *evdev.InputDevice

	x        atomic.Int32
	y        atomic.Int32
	touching atomic.Bool
	lastErr  atomic.Error
	done     chan struct{}
}

// NewEvdevTouchSource opens the input device at path (e.g. /dev/input/event1)
// and starts tracking touch state.
func NewEvdevTouchSource(path string) (*EvdevTouchSource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	s := &EvdevTouchSource{
		dev:  dev,
		done: make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *EvdevTouchSource) readLoop() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		event, err := s.dev.ReadOne()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			s.lastErr.Store(err)
			continue
		}

		switch event.Type {
		case evdev.EV_KEY:
			if event.Code == evdev.BTN_TOUCH {
				s.touching.Store(event.Value != 0)
			}
		case evdev.EV_ABS:
			switch event.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				s.x.Store(event.Value)
				s.touching.Store(true)
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				s.y.Store(event.Value)
				s.touching.Store(true)
			}
		}
	}
}

// Poll reports the most recent contact state. Read errors surface once and
// the tick is treated as no contact.
func (s *EvdevTouchSource) Poll() (TouchSample, bool, error) {
	if err := s.lastErr.Swap(nil); err != nil {
		return TouchSample{}, false, err
	}
	if !s.touching.Load() {
		return TouchSample{}, false, nil
	}
	return TouchSample{X: s.x.Load(), Y: s.y.Load()}, true, nil
}

// Close stops the reader goroutine and releases the device.
func (s *EvdevTouchSource) Close() error {
	close(s.done)
	return s.dev.Close()
}
