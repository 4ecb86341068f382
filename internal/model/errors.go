package model

import "errors"

var (
	// ErrIndexOutOfRange is returned when a batch edit addresses a section or
	// item that does not exist at the point it is applied.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCountMismatch is returned when the store's section or item counts
	// disagree with the data source after a batch edit.
	ErrCountMismatch = errors.New("count mismatch")
)
