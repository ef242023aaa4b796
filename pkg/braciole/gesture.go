package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// TouchSample is one contact point in panel coordinates, produced fresh each
// poll tick.
type TouchSample = internal.TouchSample

// TouchSource produces at most one touch sample per poll tick.
type TouchSource = internal.TouchSource

// NavEvent is a discrete navigation command classified from touch motion.
type NavEvent int

const (
	NavNone NavEvent = iota
	NavMainNext
	NavMainPrev
	NavSubNext
	NavSubPrev
)

func (e NavEvent) String() string {
	switch e {
	case NavMainNext:
		return "main-next"
	case NavMainPrev:
		return "main-prev"
	case NavSubNext:
		return "sub-next"
	case NavSubPrev:
		return "sub-prev"
	default:
		return "none"
	}
}

// SwipeDetector turns a stream of optional touch samples into navigation
// events. It anchors on the first contact of a gesture and fires when the
// motion from the anchor exceeds an axis threshold while strictly dominating
// the other axis. Sub-threshold motion re-anchors (a continuing drag), so a
// slow drag never accumulates into a swipe.
//
// After a fired gesture the detector ignores all samples for a cooldown
// interval, checked against a monotonic timestamp so the rest of the tick
// keeps running while the cooldown elapses.
type SwipeDetector struct {
	menu *Menu

	anchorX, anchorY int32
	hasAnchor        bool
	cooldownUntil    time.Time
}

// NewSwipeDetector creates a detector. The menu is consulted for the current
// screen's submenu count: horizontal swipes only fire on screens that have
// somewhere to go.
func NewSwipeDetector(menu *Menu) *SwipeDetector {
	return &SwipeDetector{menu: menu}
}

// Classify consumes the tick's sample (nil for no contact) and returns at
// most one navigation event.
func (d *SwipeDetector) Classify(sample *TouchSample, now time.Time) NavEvent {
	if sample == nil {
		// A finger lift always starts a fresh gesture; never compare
		// against a stale anchor.
		d.clearAnchor()
		return NavNone
	}

	if now.Before(d.cooldownUntil) {
		return NavNone
	}

	if !d.hasAnchor {
		d.setAnchor(sample)
		return NavNone
	}

	dx := sample.X - d.anchorX
	dy := sample.Y - d.anchorY

	if abs(dy) > constants.SwipeVerticalThreshold && abs(dy) > abs(dx) {
		d.clearAnchor()
		d.cooldownUntil = now.Add(constants.GestureCooldown)
		if dy > 0 {
			return NavMainNext // swipe down
		}
		return NavMainPrev // swipe up
	}

	if abs(dx) > constants.SwipeHorizontalThreshold && abs(dx) > abs(dy) {
		d.clearAnchor()
		d.cooldownUntil = now.Add(constants.GestureCooldown)
		if d.menu.CurrentScreen().Submenus() <= 1 {
			return NavNone
		}
		if dx < 0 {
			return NavSubNext // swipe left
		}
		return NavSubPrev // swipe right
	}

	// Neither threshold met (or exactly equal deltas): continuing drag.
	d.setAnchor(sample)
	return NavNone
}

func (d *SwipeDetector) setAnchor(sample *TouchSample) {
	d.anchorX = sample.X
	d.anchorY = sample.Y
	d.hasAnchor = true
}

func (d *SwipeDetector) clearAnchor() {
	d.hasAnchor = false
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
