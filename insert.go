package vector

// Emplace inserts an element constructed in place by init before position
// pos and returns pos. A nil init uses the element's Init hook.
// pos must lie in [Begin(), End()]. On failure the vector is unchanged.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (int, error) {
	return v.emplace(pos, init, true)
}

// Insert inserts value before position pos and returns pos.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	return v.emplace(pos, placeValue(value), false)
}

func (v *Vector[T]) emplace(pos int, init func(*T) error, owned bool) (int, error) {
	if pos < 0 || pos > v.length {
		panic("vector: insert position out of range")
	}

	switch {
	case v.length == v.buf.Capacity():
		buf, err := v.allocate(growCapacity(v.length))
		if err != nil {
			return 0, err
		}
		slot := buf.Slot(pos)
		if err := v.construct(slot, init); err != nil {
			return 0, err
		}
		if err := v.migrate(&buf, 0, 0, pos); err != nil {
			v.abandon(slot, owned)
			return 0, err
		}
		if err := v.migrate(&buf, pos, pos+1, v.length-pos); err != nil {
			v.unbuild(buf.Slots(0, pos))
			v.abandon(slot, owned)
			return 0, err
		}
		v.commit(&buf)

	case v.length > 0:
		var tmp T
		if err := v.construct(&tmp, init); err != nil {
			return 0, err
		}
		// The trailing slot takes the last element and [pos, length-1)
		// shifts right by one.
		s := v.buf.Slots(0, v.length+1)
		copy(s[pos+1:], s[pos:v.length])
		s[pos] = tmp

	default:
		if err := v.construct(v.buf.Slot(0), init); err != nil {
			return 0, err
		}
	}

	v.length++
	return pos, nil
}

// Erase removes the element at position pos and returns pos, which now
// holds the element that followed it (or End()).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.length {
		panic("vector: erase position out of range")
	}
	s := v.buf.Slots(0, v.length)
	v.cfg.elem.destroy(&s[pos])
	copy(s[pos:], s[pos+1:])
	clearSlot(&s[v.length-1])
	v.length--
	return pos
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.length == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.length--
	v.cfg.elem.destroy(v.buf.Slot(v.length))
}
