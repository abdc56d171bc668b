package node

import "errors"

// Sentinel errors for document access failures. All errors returned by this
// package wrap one of these, so callers dispatch with errors.Is.
var (
	// ErrType reports a typed accessor or narrowing operation applied to a
	// node of the wrong kind.
	ErrType = errors.New("type mismatch")

	// ErrOutOfRange reports an array index past the end of the array.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidKey reports an object lookup on a missing key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNullRef reports access through an empty Ref or a nil Element.
	ErrNullRef = errors.New("null reference")
)
