package pipeline

import "errors"

var (
	// ErrInputUnreadable is returned when an input cannot be opened or has an unsupported extension.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrMalformedInput is returned when an input does not decode to a sequence of records.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyCollection is returned when no record survives normalization.
	ErrEmptyCollection = errors.New("no valid records")
	// ErrLocked is returned when another run holds the output directory lock.
	ErrLocked = errors.New("output directory is locked by another run")
)
