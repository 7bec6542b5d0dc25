package vector

import "errors"

var (
	// ErrOutOfMemory indicates that a storage request could not be satisfied:
	// the byte size overflows, exceeds what the runtime can allocate, or
	// exceeds the limit set with WithMaxCapacity.
	ErrOutOfMemory = errors.New("vector: out of memory")

	// ErrInvalidCapacity indicates a negative capacity or size request.
	ErrInvalidCapacity = errors.New("vector: invalid capacity")
)
