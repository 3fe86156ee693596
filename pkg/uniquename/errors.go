package uniquename

import "errors"

var (
	// ErrAttemptsExhausted is returned when GroupName probed the maximum
	// number of candidates without finding a free one.
	ErrAttemptsExhausted = errors.New("no free group name within the attempt limit")

	// ErrRegistry wraps errors returned by a Registry.
	ErrRegistry = errors.New("name registry lookup failed")
)
