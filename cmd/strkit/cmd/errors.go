package cmd

import "errors"

var (
	ErrUnknownFormat        = errors.New("unknown output format")
	ErrNotANumber           = errors.New("argument is not a number")
	ErrClaimWithoutRegistry = errors.New("--claim requires --registry")
)
