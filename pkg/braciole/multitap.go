package braciole

import (
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
)

// KeyboardMode selects which character set the key grid carries.
type KeyboardMode int

const (
	ModeLower KeyboardMode = iota
	ModeUpper
	ModeNumeric
)

// Label returns the mode indicator shown on the toggle key.
func (m KeyboardMode) Label() string {
	switch m {
	case ModeUpper:
		return "ABC"
	case ModeNumeric:
		return "123"
	default:
		return "abc"
	}
}

// Next cycles lower -> upper -> numeric -> lower.
func (m KeyboardMode) Next() KeyboardMode {
	switch m {
	case ModeLower:
		return ModeUpper
	case ModeUpper:
		return ModeNumeric
	default:
		return ModeLower
	}
}

// Character clusters for the nine character cells of the 3x4 grid, in cell
// order (row-major). The bottom row holds the backspace, mode toggle and
// submit keys in every mode. Numeric clusters are single-candidate, so
// repeated taps inside the window just re-append the same digit.
var (
	lowerClusters = [9]string{"abc", "def", "ghi", "jkl", "mno", "pqrs", "tuv", "wxyz", " "}
	upperClusters = [9]string{"ABC", "DEF", "GHI", "JKL", "MNO", "PQRS", "TUV", "WXYZ", " "}
	digitClusters = [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
)

// Clusters returns the mode's candidate characters per character cell.
func (m KeyboardMode) Clusters() [9]string {
	switch m {
	case ModeUpper:
		return upperClusters
	case ModeNumeric:
		return digitClusters
	default:
		return lowerClusters
	}
}

// CellLabel returns the label drawn on a character cell for this mode.
func (m KeyboardMode) CellLabel(cell int) string {
	clusters := m.Clusters()
	if cell < 0 || cell >= len(clusters) {
		return ""
	}
	if clusters[cell] == " " {
		return "SPC"
	}
	return clusters[cell]
}

// TextEntry is the multitap text-entry state machine for the search screen.
// One key maps to several candidate characters; repeated presses of the same
// key within the multitap window cycle through them, replacing the previously
// appended character. A different key or an expired window commits the
// pending character and starts a new one.
type TextEntry struct {
	mode       KeyboardMode
	buffer     []rune
	activeCell int // -1 when no multitap cycle is pending
	cycleIndex int
	lastPress  time.Time

	// OnSubmit fires when the submit key is tapped. The submit action
	// itself (running a search, etc.) belongs to the caller.
	OnSubmit func(text string)
}

// NewTextEntry returns an empty lower-case entry state.
func NewTextEntry() *TextEntry {
	return &TextEntry{activeCell: -1}
}

// Text returns the accumulated buffer.
func (t *TextEntry) Text() string {
	return string(t.buffer)
}

// Tail returns the last max characters of the buffer, for the narrow
// input field on the panel.
func (t *TextEntry) Tail(max int) string {
	if len(t.buffer) <= max {
		return string(t.buffer)
	}
	return string(t.buffer[len(t.buffer)-max:])
}

// Mode returns the active keyboard mode.
func (t *TextEntry) Mode() KeyboardMode {
	return t.mode
}

// CellAt resolves panel coordinates to a grid cell (0..11), or -1 when the
// tap lands outside every key band.
func CellAt(x, y int32) int {
	row := -1
	for i, band := range constants.KeyRowBands {
		if y >= band[0] && y <= band[1] {
			row = i
			break
		}
	}

	col := -1
	for i, band := range constants.KeyColBands {
		if x >= band[0] && x <= band[1] {
			col = i
			break
		}
	}

	if row < 0 || col < 0 {
		return -1
	}
	return row*3 + col
}

// HandleTap feeds one raw tap into the state machine and reports whether the
// visible text (buffer, mode indicator) changed.
func (t *TextEntry) HandleTap(x, y int32, now time.Time) bool {
	cell := CellAt(x, y)
	if cell < 0 {
		return false
	}

	switch cell {
	case constants.CellBackspace:
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
		t.resetCycle()
		return true

	case constants.CellModeToggle:
		t.mode = t.mode.Next()
		t.resetCycle()
		return true

	case constants.CellSubmit:
		t.resetCycle()
		if t.OnSubmit != nil {
			t.OnSubmit(t.Text())
		}
		return true
	}

	candidates := []rune(t.mode.Clusters()[cell])

	if t.activeCell == cell && now.Sub(t.lastPress) < constants.MultitapWindow {
		// Same key inside the window: replace the pending character
		// with the next candidate.
		t.cycleIndex = (t.cycleIndex + 1) % len(candidates)
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
	} else {
		t.activeCell = cell
		t.cycleIndex = 0
	}

	t.buffer = append(t.buffer, candidates[t.cycleIndex])
	t.lastPress = now
	return true
}

func (t *TextEntry) resetCycle() {
	t.activeCell = -1
	t.cycleIndex = 0
}
