package braciole

import (
	"time"
)

// Dispatcher routes each tick's touch sample to the input consumers and
// reports whether the screen needs a redraw.
//
// The swipe detector always sees the sample. On the search screen the same
// sample is additionally fed to the text entry, with no mutual exclusion:
// a fast tap can both register as a key press and move the gesture anchor,
// and a qualifying vertical swipe over the keyboard still navigates away
// mid-entry. Swiping is the only way off the search screen, so the entry
// never claims the sample for itself.
type Dispatcher struct {
	swipes *SwipeDetector
	menu   *Menu
	entry  *TextEntry
}

// NewDispatcher wires the three input consumers together.
func NewDispatcher(swipes *SwipeDetector, menu *Menu, entry *TextEntry) *Dispatcher {
	return &Dispatcher{swipes: swipes, menu: menu, entry: entry}
}

// Tick processes one poll tick. sample is nil when there is no contact;
// screen is the screen that was active when the tick started. Returns true
// when anything visible changed.
func (d *Dispatcher) Tick(sample *TouchSample, screen Screen, now time.Time) bool {
	redraw := false

	if event := d.swipes.Classify(sample, now); event != NavNone {
		d.menu.Apply(event)
		redraw = true
	}

	if screen == ScreenSearch && sample != nil {
		if d.entry.HandleTap(sample.X, sample.Y, now) {
			redraw = true
		}
	}

	return redraw
}
