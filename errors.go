package pixframe

import "errors"

// Package errors.
var (
	// ErrAllocation is returned when an Allocator refuses a charge.
	ErrAllocation = errors.New("pixframe: allocation failed")

	// ErrInvalidSize is returned when a buffer size is negative or not finite.
	ErrInvalidSize = errors.New("pixframe: invalid buffer size")

	// ErrNilBuffer is returned when a frame is created without a buffer.
	ErrNilBuffer = errors.New("pixframe: nil buffer")

	// ErrNilFrame is returned when a registry operation targets a nil frame.
	ErrNilFrame = errors.New("pixframe: nil frame")

	// ErrNilCallback is returned when a nil callback is pushed.
	ErrNilCallback = errors.New("pixframe: nil callback")
)
