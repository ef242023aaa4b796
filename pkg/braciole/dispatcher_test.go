package braciole

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcherFixture() (*Dispatcher, *Menu, *TextEntry) {
	menu := NewMenu()
	entry := NewTextEntry()
	return NewDispatcher(NewSwipeDetector(menu), menu, entry), menu, entry
}

func TestTickNavigationForcesRedraw(t *testing.T) {
	d, menu, _ := newDispatcherFixture()

	assert.False(t, d.Tick(at(120, 60), menu.CurrentScreen(), testBase), "anchoring is not visible")
	assert.True(t, d.Tick(at(120, 140), menu.CurrentScreen(), testBase.Add(100*time.Millisecond)))
	assert.Equal(t, ScreenWeather, menu.CurrentScreen())
}

func TestTickNoContactNoRedraw(t *testing.T) {
	d, menu, _ := newDispatcherFixture()
	assert.False(t, d.Tick(nil, menu.CurrentScreen(), testBase))
}

func TestTapsOnlyReachEntryOnSearchScreen(t *testing.T) {
	d, menu, entry := newDispatcherFixture()

	x, y := cellCenter(0)
	assert.False(t, d.Tick(at(x, y), ScreenTime, testBase))
	assert.Equal(t, "", entry.Text(), "key taps ignored off the search screen")

	menu.ApplyMain(1)
	menu.ApplyMain(1)
	menu.ApplyMain(1)
	require.Equal(t, ScreenSearch, menu.CurrentScreen())

	assert.True(t, d.Tick(at(x, y), ScreenSearch, testBase.Add(time.Second)))
	assert.Equal(t, "a", entry.Text())
}

// A sample on the search screen feeds both the swipe detector and the text
// entry. A drag across the keyboard therefore types while it navigates.
func TestSearchScreenSampleFeedsBothConsumers(t *testing.T) {
	d, menu, entry := newDispatcherFixture()
	menu.ApplyMain(1)
	menu.ApplyMain(1)
	menu.ApplyMain(1)
	require.Equal(t, ScreenSearch, menu.CurrentScreen())

	// (100,60) is cell 1 and the gesture anchor.
	assert.True(t, d.Tick(at(100, 60), ScreenSearch, testBase))
	assert.Equal(t, "d", entry.Text())

	// (100,140) is 80px below: a vertical swipe, and also cell 7.
	assert.True(t, d.Tick(at(100, 140), ScreenSearch, testBase.Add(100*time.Millisecond)))
	assert.Equal(t, ScreenSettings, menu.CurrentScreen(), "swipe navigated away")
	assert.Equal(t, "dw", entry.Text(), "the same motion also typed")
}
