package types

import "errors"

// Lookup and validation errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Store errors.
var (
	ErrInvalidKey      = errors.New("invalid key")
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
