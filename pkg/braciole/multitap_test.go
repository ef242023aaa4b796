package braciole

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellCenter returns panel coordinates inside the given grid cell.
func cellCenter(cell int) (int32, int32) {
	row := cell / 3
	col := cell % 3
	x := (constants.KeyColBands[col][0] + constants.KeyColBands[col][1]) / 2
	y := (constants.KeyRowBands[row][0] + constants.KeyRowBands[row][1]) / 2
	return x, y
}

func tapCell(t *TextEntry, cell int, at time.Time) bool {
	x, y := cellCenter(cell)
	return t.HandleTap(x, y, at)
}

func TestCellAt(t *testing.T) {
	x, y := cellCenter(0)
	assert.Equal(t, 0, CellAt(x, y))
	x, y = cellCenter(11)
	assert.Equal(t, 11, CellAt(x, y))

	assert.Equal(t, -1, CellAt(0, 0), "above the grid")
	assert.Equal(t, -1, CellAt(85, 100), "gap between columns")
	assert.Equal(t, -1, CellAt(120, 85), "gap between rows")
}

func TestMultitapCycleThenCommit(t *testing.T) {
	entry := NewTextEntry()

	// Cell 1 carries "def". Two taps inside the window cycle d -> e;
	// a third tap after the window expires starts a fresh character.
	require.True(t, tapCell(entry, 1, testBase))
	assert.Equal(t, "d", entry.Text())

	require.True(t, tapCell(entry, 1, testBase.Add(500*time.Millisecond)))
	assert.Equal(t, "e", entry.Text())

	require.True(t, tapCell(entry, 1, testBase.Add(1600*time.Millisecond)))
	assert.Equal(t, "ed", entry.Text())
}

func TestMultitapCycleWrapsAround(t *testing.T) {
	entry := NewTextEntry()

	// Four taps on "abc" wrap back to the first candidate.
	now := testBase
	for i := 0; i < 4; i++ {
		tapCell(entry, 0, now)
		now = now.Add(200 * time.Millisecond)
	}
	assert.Equal(t, "a", entry.Text())
}

func TestDifferentKeyCommitsPendingCharacter(t *testing.T) {
	entry := NewTextEntry()

	tapCell(entry, 0, testBase)
	tapCell(entry, 1, testBase.Add(200*time.Millisecond))
	assert.Equal(t, "ad", entry.Text())
}

func TestSpaceCell(t *testing.T) {
	entry := NewTextEntry()

	tapCell(entry, 0, testBase)
	tapCell(entry, 8, testBase.Add(1500*time.Millisecond))
	assert.Equal(t, "a ", entry.Text())
}

func TestBackspace(t *testing.T) {
	entry := NewTextEntry()

	tapCell(entry, 0, testBase)
	tapCell(entry, 1, testBase.Add(1500*time.Millisecond))
	require.Equal(t, "ad", entry.Text())

	require.True(t, tapCell(entry, constants.CellBackspace, testBase.Add(2*time.Second)))
	assert.Equal(t, "a", entry.Text())
}

func TestBackspaceOnEmptyBufferStillRedraws(t *testing.T) {
	entry := NewTextEntry()
	assert.True(t, tapCell(entry, constants.CellBackspace, testBase))
	assert.Equal(t, "", entry.Text())
}

func TestBackspaceResetsMultitapCycle(t *testing.T) {
	entry := NewTextEntry()

	tapCell(entry, 0, testBase)
	tapCell(entry, constants.CellBackspace, testBase.Add(200*time.Millisecond))
	require.Equal(t, "", entry.Text())

	// The next tap on the same key is a fresh press, not a cycle.
	tapCell(entry, 0, testBase.Add(400*time.Millisecond))
	assert.Equal(t, "a", entry.Text())
}

func TestModeToggleCycles(t *testing.T) {
	entry := NewTextEntry()
	assert.Equal(t, "abc", entry.Mode().Label())

	tapCell(entry, constants.CellModeToggle, testBase)
	assert.Equal(t, "ABC", entry.Mode().Label())

	tapCell(entry, constants.CellModeToggle, testBase.Add(100*time.Millisecond))
	assert.Equal(t, "123", entry.Mode().Label())

	tapCell(entry, constants.CellModeToggle, testBase.Add(200*time.Millisecond))
	assert.Equal(t, "abc", entry.Mode().Label())
}

func TestModeToggleResetsMultitapCycle(t *testing.T) {
	entry := NewTextEntry()

	tapCell(entry, 0, testBase)
	tapCell(entry, constants.CellModeToggle, testBase.Add(200*time.Millisecond))

	// Same cell, still inside the original window: must append, not cycle.
	tapCell(entry, 0, testBase.Add(400*time.Millisecond))
	assert.Equal(t, "aA", entry.Text())
}

func TestNumericModeSingleCandidate(t *testing.T) {
	entry := NewTextEntry()
	tapCell(entry, constants.CellModeToggle, testBase)
	tapCell(entry, constants.CellModeToggle, testBase.Add(50*time.Millisecond))
	require.Equal(t, ModeNumeric, entry.Mode())

	tapCell(entry, 4, testBase.Add(100*time.Millisecond))
	assert.Equal(t, "5", entry.Text())

	// Repeat taps inside the window cycle through the single candidate,
	// leaving the buffer unchanged.
	tapCell(entry, 4, testBase.Add(300*time.Millisecond))
	assert.Equal(t, "5", entry.Text())
}

func TestSubmitFiresCallbackWithBuffer(t *testing.T) {
	entry := NewTextEntry()
	var got string
	entry.OnSubmit = func(text string) { got = text }

	tapCell(entry, 1, testBase)                          // d
	tapCell(entry, 1, testBase.Add(1500*time.Millisecond)) // d
	require.True(t, tapCell(entry, constants.CellSubmit, testBase.Add(2*time.Second)))
	assert.Equal(t, "dd", got)
	assert.Equal(t, "dd", entry.Text(), "submit keeps the buffer")
}

func TestSubmitWithoutCallback(t *testing.T) {
	entry := NewTextEntry()
	assert.True(t, tapCell(entry, constants.CellSubmit, testBase))
}

func TestTapOutsideGridIsIgnored(t *testing.T) {
	entry := NewTextEntry()
	assert.False(t, entry.HandleTap(5, 5, testBase))
	assert.Equal(t, "", entry.Text())
}

func TestTail(t *testing.T) {
	entry := NewTextEntry()
	now := testBase
	for i := 0; i < 5; i++ {
		tapCell(entry, i, now)
		now = now.Add(1500 * time.Millisecond)
	}
	require.Equal(t, "adgjm", entry.Text())
	assert.Equal(t, "adgjm", entry.Tail(10))
	assert.Equal(t, "gjm", entry.Tail(3))
}
