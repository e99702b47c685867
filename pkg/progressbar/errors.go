package progressbar

import "errors"

var (
	// ErrInvalidState is returned when a finished bar is advanced.
	ErrInvalidState = errors.New("invalid progress bar state")

	// ErrInvalidArgument is returned for positions outside [0, total].
	ErrInvalidArgument = errors.New("invalid progress bar argument")
)
