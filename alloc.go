package vector

import (
	"fmt"
	"unsafe"
)

// maxAllocBytes is the largest single allocation the runtime accepts
// (2^47 on 64-bit platforms, 2^31 on 32-bit ones).
const maxAllocBytes uintptr = 1 << (31 + 16*(^uintptr(0)>>63))

// slotSize returns the size in bytes of one slot holding a T.
func slotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlots returns storage for n slots of type T.
// The slots hold the zero value of T; no element is considered live.
// A limit <= 0 means only the runtime bound applies.
// Returns nil storage if n == 0 without touching the allocator.
func allocSlots[T any](n, limit int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d slots", ErrInvalidCapacity, n)
	}
	if n == 0 {
		return nil, nil
	}
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d slots exceeds limit of %d", ErrOutOfMemory, n, limit)
	}
	if size := slotSize[T](); size > 0 && uintptr(n) > maxAllocBytes/size {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, size)
	}
	return make([]T, n), nil
}
