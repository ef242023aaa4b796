package internal

import "errors"

// TouchSample is one contact point in panel coordinates.
type TouchSample struct {
	X int32
	Y int32
}

// TouchSource produces at most one touch sample per poll tick.
//
// ok=false means "no contact", which is the normal idle state. A non-nil
// error is a driver-level failure; callers log it and treat the tick as no
// contact rather than aborting. ErrDisplayClosed is the one exception: it
// asks the tick loop to shut down cleanly.
type TouchSource interface {
	Poll() (sample TouchSample, ok bool, err error)
	Close() error
}

// ErrDisplayClosed reports that the display surface went away (the user
// closed the dev window).
var ErrDisplayClosed = errors.New("display closed")
