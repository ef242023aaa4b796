package braciole

// Screen identifies a top-level menu screen. Vertical swipes move between
// screens; horizontal swipes move between a screen's submenu variants.
type Screen int

const (
	ScreenTime Screen = iota
	ScreenWeather
	ScreenCrypto
	ScreenSearch
	ScreenSettings

	screenCount = 5
)

func (s Screen) String() string {
	switch s {
	case ScreenTime:
		return "time"
	case ScreenWeather:
		return "weather"
	case ScreenCrypto:
		return "crypto"
	case ScreenSearch:
		return "search"
	case ScreenSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Submenus returns how many submenu variants the screen has.
// Only the weather screen has more than one (current conditions + details).
func (s Screen) Submenus() int {
	if s == ScreenWeather {
		return 2
	}
	return 1
}

// Menu holds the two-level navigation position. The submenu index is always
// valid for the current screen: every main move resets it to zero, and
// submenu moves wrap within the screen's submenu count.
type Menu struct {
	main int
	sub  int
}

// NewMenu returns a menu positioned on the time screen.
func NewMenu() *Menu {
	return &Menu{}
}

// CurrentScreen returns the active top-level screen.
func (m *Menu) CurrentScreen() Screen {
	return Screen(m.main)
}

// Sub returns the active submenu index within the current screen.
func (m *Menu) Sub() int {
	return m.sub
}

// ApplyMain moves one step through the top-level screens, wrapping at both
// ends. direction is +1 (swipe down) or -1 (swipe up).
func (m *Menu) ApplyMain(direction int) {
	m.main = ((m.main+direction)%screenCount + screenCount) % screenCount
	m.sub = 0
}

// ApplySub moves one step through the current screen's submenus, wrapping.
// A no-op on screens with a single submenu.
func (m *Menu) ApplySub(direction int) {
	count := m.CurrentScreen().Submenus()
	if count <= 1 {
		return
	}
	m.sub = ((m.sub+direction)%count + count) % count
}

// Apply routes a navigation event to the matching move.
func (m *Menu) Apply(event NavEvent) {
	switch event {
	case NavMainNext:
		m.ApplyMain(1)
	case NavMainPrev:
		m.ApplyMain(-1)
	case NavSubNext:
		m.ApplySub(1)
	case NavSubPrev:
		m.ApplySub(-1)
	}
}
