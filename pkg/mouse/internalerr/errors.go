package internalerr

import "errors"

// Sentinel errors shared by the mouse packages. The tokenizer, sentence
// detector and vocabulary never return errors; these cover the shell around
// them (input reading, configuration, run storage).
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStoreUnavailable = errors.New("store unavailable")
)
