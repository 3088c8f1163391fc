package report

import "errors"

var (
	// ErrInvalidRange means from is after to. Ranges are rejected, never
	// silently swapped.
	ErrInvalidRange = errors.New("invalid date range: from must not be after to")
)
