package timer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration is returned for a non-positive countdown length.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidState means an operation was called in a status that does not
	// allow it. Callers are expected to gate their calls, so this is a bug.
	ErrInvalidState = errors.New("invalid state transition")

	ErrAlreadyRunning = fmt.Errorf("%w: timer already running", ErrInvalidState)
	ErrNotRunning     = fmt.Errorf("%w: timer not running", ErrInvalidState)
	ErrNotConfigured  = fmt.Errorf("%w: duration not configured", ErrInvalidState)
)
