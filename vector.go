// Package vector implements a contiguous growable array on top of an
// explicitly owned storage buffer.
package vector

import "iter"

// Vector is a growable array of T. Elements in [0, Len()) are live; the
// remaining slots of the buffer hold the zero value of T.
//
// A Vector must not be copied; use Clone for a deep copy and Move or
// MoveFrom to transfer ownership. Not goroutine-safe.
type Vector[T any] struct {
	buf    RawBuffer[T]
	length int
	cfg    config[T]

	allocations   int
	reallocations int
}

// New returns an empty vector. No storage is allocated until the first
// element arrives.
func New[T any](opts ...Option[T]) *Vector[T] {
	return &Vector[T]{cfg: newConfig(opts)}
}

// NewSized returns a vector holding n value-constructed elements.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	buf, err := v.allocate(n)
	if err != nil {
		return nil, err
	}
	if err := v.constructRange(&buf, 0, n); err != nil {
		return nil, err
	}
	v.buf.MoveFrom(&buf)
	v.length = n
	return v, nil
}

// FromSlice returns a vector holding copies of values, in order.
// The capacity equals len(values).
func FromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	buf, err := v.allocate(len(values))
	if err != nil {
		return nil, err
	}
	dst := buf.Slots(0, len(values))
	for i := range values {
		if err := v.cfg.elem.copyConstruct(&dst[i], &values[i]); err != nil {
			v.cfg.elem.destroyAll(dst[:i])
			return nil, err
		}
	}
	v.buf.MoveFrom(&buf)
	v.length = len(values)
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of slots in the current buffer.
func (v *Vector[T]) Cap() int {
	return v.buf.Capacity()
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.length
}

// At returns a pointer to the element at index i.
// The pointer is invalidated by any reallocation.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.length {
		panic("vector: index out of range")
	}
	return v.buf.Slot(i)
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set copy-assigns value over the element at index i, running the
// element's Assign hook (or Copy and Destroy without one). On failure the
// element keeps its old value.
func (v *Vector[T]) Set(i int, value T) error {
	return v.cfg.elem.assign(v.At(i), &value)
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() *T {
	return v.At(v.length - 1)
}

// Data returns the live elements as a slice sharing the vector's storage.
// The slice cannot be appended into the spare capacity.
func (v *Vector[T]) Data() []T {
	return v.buf.Slots(0, v.length)
}

// All returns an iterator over index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, *v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(*v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Swap exchanges the contents of v and other. Settings stay in place.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.length, other.length = other.length, v.length
}

// Move returns a new vector that owns v's elements and buffer, leaving v
// empty. No element is copied and nothing is allocated.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{cfg: v.cfg}
	dst.buf.MoveFrom(&v.buf)
	dst.length, v.length = v.length, 0
	return dst
}

// MoveFrom destroys v's elements and takes over src's buffer and elements,
// leaving src empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	v.buf.MoveFrom(&src.buf)
	v.length, src.length = src.length, 0
}

// Release destroys all elements and frees the buffer. The vector stays
// usable and empty.
func (v *Vector[T]) Release() {
	v.cfg.elem.destroyAll(v.buf.Slots(0, v.length))
	v.length = 0
	v.buf.Deallocate()
}
