package version

import "errors"

// ErrInvalidVersion is returned when a string cannot be read as a version.
var ErrInvalidVersion = errors.New("invalid version string")
