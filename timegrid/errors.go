package timegrid

import "errors"

// Sentinel errors for time grid construction.
var (
	// ErrInvalidTimeGrid indicates a malformed uniform spec (T<=0 or N<1) or an
	// explicit point sequence that is not strictly increasing or does not start
	// at zero.
	ErrInvalidTimeGrid = errors.New("timegrid: invalid time grid")
)
