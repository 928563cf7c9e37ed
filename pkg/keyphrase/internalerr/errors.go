// Package internalerr holds the sentinel errors shared by the
// pipeline stages, the configuration loaders and the stores. Callers
// match them with errors.Is after wrapping.
package internalerr

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrEngineFailure    = errors.New("tokenizer engine failure")
	ErrStoreUnavailable = errors.New("store unavailable")
)
