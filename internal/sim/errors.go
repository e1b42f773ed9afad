package sim

import "errors"

var (
	// ErrInvalidInput is returned when a tick receives negative steps or
	// elevation, or a malformed workout record. No state is mutated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyActive is returned by Start while an expedition is in progress.
	ErrAlreadyActive = errors.New("expedition already in progress")

	// ErrNoActiveExpedition is returned by operations that need a running
	// expedition when none has been started.
	ErrNoActiveExpedition = errors.New("no active expedition")

	// ErrInvalidMountain is returned by Start when the authored mountain
	// fails validation (non-monotonic camp thresholds and the like).
	ErrInvalidMountain = errors.New("invalid mountain configuration")
)
