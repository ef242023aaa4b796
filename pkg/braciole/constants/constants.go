// Package constants defines shared constants and configuration values
// used throughout the braciole UI controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar and WindowHeightEnvVar override the dev-mode window size.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// In dev mode braciole opens a desktop window instead of grabbing the
// device framebuffer, and reads touch input from the mouse.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// DisplayWidth and DisplayHeight are the logical resolution of the round
// GC9A01-class panel. All layout coordinates assume this space; the SDL
// renderer scales it to whatever window the platform gives us.
const (
	DisplayWidth  int32 = 240
	DisplayHeight int32 = 240
)

// TickInterval is the input poll period. One tick runs the whole
// sample -> classify -> mutate -> render pipeline.
const TickInterval = 100 * time.Millisecond

// Swipe thresholds in panel pixels. A delta must exceed its axis threshold
// AND strictly dominate the other axis to count as a swipe.
const (
	SwipeVerticalThreshold   int32 = 50
	SwipeHorizontalThreshold int32 = 40
)

// GestureCooldown suppresses swipe classification after a fired gesture so
// one continuous motion cannot trigger twice.
const GestureCooldown = 300 * time.Millisecond

// MultitapWindow is how long a repeated press on the same key keeps cycling
// through the key's candidate characters instead of starting a new one.
const MultitapWindow = 1000 * time.Millisecond

// Key grid bands for the search keyboard, in panel pixels. A tap resolves to
// cell row*3+col when it lands inside a row band and a column band; taps in
// the gutters are ignored.
var (
	KeyRowBands = [4][2]int32{{50, 80}, {90, 120}, {130, 160}, {170, 200}}
	KeyColBands = [3][2]int32{{20, 80}, {90, 150}, {160, 220}}
)

// Special cells on the bottom keyboard row, fixed across keyboard modes.
const (
	CellBackspace  = 9
	CellModeToggle = 10
	CellSubmit     = 11
)
