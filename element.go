package vector

import "fmt"

// Element describes the lifecycle of values stored in a Vector.
// Every hook is optional; the zero Element gives plain Go value semantics.
type Element[T any] struct {
	// Init value-constructs a new element into a zeroed slot.
	// Nil leaves the zero value.
	Init func(slot *T) error

	// Copy copy-constructs src into a zeroed slot dst.
	// Nil assigns *dst = *src.
	Copy func(dst, src *T) error

	// Assign copy-assigns src over the live element dst.
	// Nil copy-constructs src aside, then destroys dst and puts the copy
	// in its place.
	Assign func(dst, src *T) error

	// Relocate moves src into a zeroed slot of a new buffer. The source slot
	// is discarded afterwards without Destroy. Nil transfers the value as is,
	// which cannot fail. Shifts within the same buffer (Insert, Erase) never
	// call Relocate.
	Relocate func(dst, src *T) error

	// Destroy ends the lifetime of a live element. The slot is zeroed after.
	Destroy func(slot *T)
}

// relocatesByCopy reports whether migrating into a new buffer must
// copy-construct. A custom Relocate may fail, so copying is preferred when
// the type can be copied; the plain transfer never fails.
func (e *Element[T]) relocatesByCopy() bool {
	return e.Relocate != nil && e.Copy != nil
}

func (e *Element[T]) construct(slot *T) error {
	if e.Init == nil {
		return nil
	}
	if err := e.Init(slot); err != nil {
		clearSlot(slot)
		return fmt.Errorf("vector: construct element: %w", err)
	}
	return nil
}

func (e *Element[T]) copyConstruct(dst, src *T) error {
	if e.Copy == nil {
		*dst = *src
		return nil
	}
	if err := e.Copy(dst, src); err != nil {
		clearSlot(dst)
		return fmt.Errorf("vector: copy element: %w", err)
	}
	return nil
}

func (e *Element[T]) assign(dst, src *T) error {
	if e.Assign == nil {
		// Build the copy aside so a failed Copy leaves dst live.
		var tmp T
		if err := e.copyConstruct(&tmp, src); err != nil {
			return err
		}
		e.destroy(dst)
		*dst = tmp
		return nil
	}
	if err := e.Assign(dst, src); err != nil {
		return fmt.Errorf("vector: assign element: %w", err)
	}
	return nil
}

func (e *Element[T]) relocate(dst, src *T) error {
	if e.Relocate == nil {
		*dst = *src
		return nil
	}
	if err := e.Relocate(dst, src); err != nil {
		clearSlot(dst)
		return fmt.Errorf("vector: relocate element: %w", err)
	}
	return nil
}

func (e *Element[T]) destroy(slot *T) {
	if e.Destroy != nil {
		e.Destroy(slot)
	}
	clearSlot(slot)
}

// destroyAll destroys every element of s.
func (e *Element[T]) destroyAll(s []T) {
	if e.Destroy != nil {
		for i := range s {
			e.Destroy(&s[i])
		}
	}
	clear(s)
}

func clearSlot[T any](slot *T) {
	var zero T
	*slot = zero
}
