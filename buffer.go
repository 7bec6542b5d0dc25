package vector

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns a fixed-capacity block of slots for values of type T.
// It knows nothing about which slots hold live elements; that bookkeeping
// belongs to the owner. Slots start out as the zero value of T.
//
// A RawBuffer must not be copied. Ownership moves with MoveFrom or Swap.
type RawBuffer[T any] struct {
	_     noCopy
	slots []T // nil when capacity is 0
}

// AllocateBuffer returns a buffer with room for capacity elements.
// A capacity of 0 yields an empty buffer without calling the allocator.
func AllocateBuffer[T any](capacity int) (RawBuffer[T], error) {
	return allocateBuffer[T](capacity, 0)
}

func allocateBuffer[T any](capacity, limit int) (RawBuffer[T], error) {
	slots, err := allocSlots[T](capacity, limit)
	if err != nil {
		return RawBuffer[T]{}, err
	}
	return RawBuffer[T]{slots: slots}, nil
}

// Capacity returns the number of slots in the buffer.
func (b *RawBuffer[T]) Capacity() int {
	return len(b.slots)
}

// Address returns a pointer to the first slot, or nil for an empty buffer.
func (b *RawBuffer[T]) Address() *T {
	if len(b.slots) == 0 {
		return nil
	}
	return &b.slots[0]
}

// Slot returns a pointer to the slot at offset.
// Panics if offset is outside [0, Capacity()).
func (b *RawBuffer[T]) Slot(offset int) *T {
	if offset < 0 || offset >= len(b.slots) {
		panic("vector: buffer offset out of range")
	}
	return &b.slots[offset]
}

// Slots returns the slots in [from, to) as a slice that cannot grow past to.
// from == to == Capacity() is valid and yields an empty slice.
func (b *RawBuffer[T]) Slots(from, to int) []T {
	if from < 0 || from > to || to > len(b.slots) {
		panic("vector: buffer range out of range")
	}
	return b.slots[from:to:to]
}

// Deallocate releases the block. No element destructors run; the owner must
// have destroyed its live elements first. Deallocating an empty buffer is a
// no-op.
func (b *RawBuffer[T]) Deallocate() {
	b.slots = nil
}

// MoveFrom releases b's block and takes over src's, leaving src empty.
func (b *RawBuffer[T]) MoveFrom(src *RawBuffer[T]) {
	if b == src {
		return
	}
	b.slots = src.slots
	src.slots = nil
}

// Swap exchanges the blocks owned by b and other.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}
