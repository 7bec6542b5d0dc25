package vector

// growCapacity returns the capacity to grow a full buffer holding n
// elements to.
func growCapacity(n int) int {
	if n == 0 {
		return 1
	}
	return 2 * n
}

// allocate returns a fresh buffer of n slots, honoring the capacity cap.
func (v *Vector[T]) allocate(n int) (RawBuffer[T], error) {
	slots, err := allocSlots[T](n, v.cfg.maxCap)
	if err != nil {
		return RawBuffer[T]{}, err
	}
	if n > 0 {
		v.allocations++
	}
	return RawBuffer[T]{slots: slots}, nil
}

// migrate builds the n live elements starting at from into dst starting at
// to. The current buffer is not modified. On failure everything built in
// dst is torn down again.
func (v *Vector[T]) migrate(dst *RawBuffer[T], from, to, n int) error {
	src := v.buf.Slots(from, from+n)
	out := dst.Slots(to, to+n)
	e := &v.cfg.elem
	switch {
	case e.relocatesByCopy():
		for i := range src {
			if err := e.copyConstruct(&out[i], &src[i]); err != nil {
				e.destroyAll(out[:i])
				return err
			}
		}
	case e.Relocate == nil:
		copy(out, src)
	default:
		for i := range src {
			if err := e.relocate(&out[i], &src[i]); err != nil {
				clear(out[:i])
				return err
			}
		}
	}
	return nil
}

// unbuild tears down elements that migrate placed into a side buffer.
func (v *Vector[T]) unbuild(s []T) {
	if v.cfg.elem.relocatesByCopy() {
		v.cfg.elem.destroyAll(s)
		return
	}
	clear(s)
}

// abandon discards an element constructed into a side buffer. Elements the
// vector constructed itself are destroyed; values handed in by the caller
// are only dropped.
func (v *Vector[T]) abandon(slot *T, owned bool) {
	if owned {
		v.cfg.elem.destroy(slot)
		return
	}
	clearSlot(slot)
}

// commit retires the current elements and adopts buf, which must already
// hold the migrated elements.
func (v *Vector[T]) commit(buf *RawBuffer[T]) {
	oldCap := v.buf.Capacity()
	if v.cfg.elem.relocatesByCopy() {
		v.cfg.elem.destroyAll(v.buf.Slots(0, v.length))
	}
	v.buf.MoveFrom(buf)
	v.reallocations++
	if v.cfg.logger != nil {
		v.cfg.logger.Debug("vector: reallocated",
			"old_cap", oldCap,
			"new_cap", v.buf.Capacity(),
			"len", v.length,
		)
	}
}

// construct runs init, or the element's Init hook when init is nil, on a
// zeroed slot.
func (v *Vector[T]) construct(slot *T, init func(*T) error) error {
	if init == nil {
		return v.cfg.elem.construct(slot)
	}
	if err := init(slot); err != nil {
		clearSlot(slot)
		return err
	}
	return nil
}

// constructRange value-constructs the slots [from, to) of buf.
func (v *Vector[T]) constructRange(buf *RawBuffer[T], from, to int) error {
	s := buf.Slots(from, to)
	for i := range s {
		if err := v.cfg.elem.construct(&s[i]); err != nil {
			v.cfg.elem.destroyAll(s[:i])
			return err
		}
	}
	return nil
}

// Reserve makes room for at least n elements. It never shrinks the buffer.
// On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Capacity() {
		return nil
	}
	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := v.migrate(&buf, 0, 0, v.length); err != nil {
		return err
	}
	v.commit(&buf)
	return nil
}

// Resize changes the number of elements to n. Shrinking destroys the
// trailing elements and keeps the capacity. Growing value-constructs the
// new elements, reallocating to exactly n slots when needed. On failure the
// vector is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative size")
	}
	if n <= v.length {
		v.cfg.elem.destroyAll(v.buf.Slots(n, v.length))
		v.length = n
		return nil
	}
	if n <= v.buf.Capacity() {
		if err := v.constructRange(&v.buf, v.length, n); err != nil {
			return err
		}
		v.length = n
		return nil
	}

	buf, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err := v.constructRange(&buf, v.length, n); err != nil {
		return err
	}
	if err := v.migrate(&buf, 0, 0, v.length); err != nil {
		v.cfg.elem.destroyAll(buf.Slots(v.length, n))
		return err
	}
	v.commit(&buf)
	v.length = n
	return nil
}

// EmplaceBack appends an element constructed in place by init and returns
// a pointer to it. A nil init uses the element's Init hook. When the buffer
// is full its capacity doubles (to 1 when empty). On failure the vector is
// unchanged.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	return v.emplaceBack(init, true)
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.emplaceBack(placeValue(value), false)
	return err
}

func (v *Vector[T]) emplaceBack(init func(*T) error, owned bool) (*T, error) {
	if v.length < v.buf.Capacity() {
		if err := v.construct(v.buf.Slot(v.length), init); err != nil {
			return nil, err
		}
		v.length++
		return v.buf.Slot(v.length - 1), nil
	}

	buf, err := v.allocate(growCapacity(v.length))
	if err != nil {
		return nil, err
	}
	slot := buf.Slot(v.length)
	if err := v.construct(slot, init); err != nil {
		return nil, err
	}
	if err := v.migrate(&buf, 0, 0, v.length); err != nil {
		v.abandon(slot, owned)
		return nil, err
	}
	v.commit(&buf)
	v.length++
	return v.buf.Slot(v.length - 1), nil
}

// placeValue returns a constructor that stores value as is.
func placeValue[T any](value T) func(*T) error {
	return func(slot *T) error {
		*slot = value
		return nil
	}
}
