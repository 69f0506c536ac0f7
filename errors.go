package collections

import "errors"

var (
	// ErrEmpty is returned when reading from a collection with no elements.
	ErrEmpty = errors.New("collection is empty")
	// ErrIndexOutOfRange is returned by indexed access outside [0, Count).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidArgument is returned when a required argument is nil.
	ErrInvalidArgument = errors.New("invalid argument")
)
