package braciole

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(x, y int32) *TouchSample {
	return &TouchSample{X: x, Y: y}
}

func TestSwipeDownAdvancesMainMenu(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	require.Equal(t, NavNone, d.Classify(at(120, 60), testBase), "first contact only anchors")

	event := d.Classify(at(125, 140), testBase.Add(100*time.Millisecond))
	require.Equal(t, NavMainNext, event)

	menu.Apply(event)
	assert.Equal(t, ScreenWeather, menu.CurrentScreen())
	assert.Equal(t, 0, menu.Sub())
}

func TestSwipeUpRetreatsAndWraps(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	d.Classify(at(120, 150), testBase)
	event := d.Classify(at(120, 80), testBase.Add(100*time.Millisecond))
	require.Equal(t, NavMainPrev, event)

	menu.Apply(event)
	assert.Equal(t, ScreenSettings, menu.CurrentScreen(), "main index wraps below zero")
}

func TestCooldownSuppressesClassification(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	d.Classify(at(120, 60), testBase)
	require.Equal(t, NavMainNext, d.Classify(at(120, 140), testBase.Add(100*time.Millisecond)))

	// Inside the cooldown nothing anchors and nothing fires, even a
	// motion that would qualify on its own.
	assert.Equal(t, NavNone, d.Classify(at(120, 60), testBase.Add(200*time.Millisecond)))
	assert.Equal(t, NavNone, d.Classify(at(120, 150), testBase.Add(300*time.Millisecond)))

	// After the cooldown the next sample anchors a fresh gesture.
	assert.Equal(t, NavNone, d.Classify(at(120, 60), testBase.Add(500*time.Millisecond)))
	assert.Equal(t, NavMainNext, d.Classify(at(120, 140), testBase.Add(600*time.Millisecond)))
}

func TestHorizontalSwipeCyclesWeatherSubmenus(t *testing.T) {
	menu := NewMenu()
	menu.ApplyMain(1) // weather
	d := NewSwipeDetector(menu)

	d.Classify(at(160, 100), testBase)
	event := d.Classify(at(110, 108), testBase.Add(100*time.Millisecond))
	require.Equal(t, NavSubNext, event, "swipe left advances the submenu")
	menu.Apply(event)
	assert.Equal(t, 1, menu.Sub())

	// Second left swipe, after the cooldown, wraps back to the first
	// submenu (weather has two).
	d.Classify(at(160, 100), testBase.Add(500*time.Millisecond))
	event = d.Classify(at(110, 100), testBase.Add(600*time.Millisecond))
	require.Equal(t, NavSubNext, event)
	menu.Apply(event)
	assert.Equal(t, 0, menu.Sub())
}

func TestSwipeRightGoesToPreviousSubmenu(t *testing.T) {
	menu := NewMenu()
	menu.ApplyMain(1) // weather
	menu.ApplySub(1)
	d := NewSwipeDetector(menu)

	d.Classify(at(100, 100), testBase)
	event := d.Classify(at(150, 100), testBase.Add(100*time.Millisecond))
	require.Equal(t, NavSubPrev, event)
	menu.Apply(event)
	assert.Equal(t, 0, menu.Sub())
}

func TestHorizontalSwipeOnSingleSubmenuScreen(t *testing.T) {
	menu := NewMenu() // time screen, one submenu
	d := NewSwipeDetector(menu)

	d.Classify(at(160, 100), testBase)
	event := d.Classify(at(110, 100), testBase.Add(100*time.Millisecond))
	assert.Equal(t, NavNone, event)
	assert.Equal(t, 0, menu.Sub())

	// The gesture still consumed the motion: cooldown applies.
	assert.Equal(t, NavNone, d.Classify(at(120, 60), testBase.Add(200*time.Millisecond)))
	assert.Equal(t, NavNone, d.Classify(at(120, 140), testBase.Add(300*time.Millisecond)))
}

func TestEqualDeltasFireNeitherAxis(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	d.Classify(at(100, 100), testBase)
	event := d.Classify(at(160, 160), testBase.Add(100*time.Millisecond))
	assert.Equal(t, NavNone, event, "equal deltas are a drag, not a swipe")

	// The drag re-anchored at the latest sample, so a further vertical
	// move is measured from there.
	event = d.Classify(at(160, 215), testBase.Add(200*time.Millisecond))
	assert.Equal(t, NavMainNext, event)
}

func TestSlowDragNeverFires(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	// 30px steps stay under the vertical threshold and keep re-anchoring.
	for i, y := range []int32{0, 30, 60, 90, 120} {
		event := d.Classify(at(120, y), testBase.Add(time.Duration(i)*100*time.Millisecond))
		assert.Equal(t, NavNone, event, "step %d", i)
	}
	assert.Equal(t, ScreenTime, menu.CurrentScreen())
}

func TestContactLossClearsAnchor(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	d.Classify(at(120, 60), testBase)
	assert.Equal(t, NavNone, d.Classify(nil, testBase.Add(100*time.Millisecond)))

	// A touch far from the dropped anchor is a new anchor, not a swipe.
	event := d.Classify(at(120, 200), testBase.Add(200*time.Millisecond))
	assert.Equal(t, NavNone, event)
}

func TestRepeatedNoContactIsIdempotent(t *testing.T) {
	menu := NewMenu()
	d := NewSwipeDetector(menu)

	assert.Equal(t, NavNone, d.Classify(nil, testBase))
	assert.Equal(t, NavNone, d.Classify(nil, testBase.Add(100*time.Millisecond)))
	assert.False(t, d.hasAnchor)
}
