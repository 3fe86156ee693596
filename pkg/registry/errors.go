package registry

import "errors"

var (
	ErrLookup        = errors.New("registry lookup failed")
	ErrClaim         = errors.New("registry claim failed")
	ErrSchemaMissing = errors.New("registry table does not exist, run the migrations first")
	ErrUnknownKind   = errors.New("unknown registry kind")
)
