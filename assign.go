package vector

// Clone returns a deep copy of v with the same settings. Every element is
// copy-constructed into storage sized to Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return cloneWith(v, v.cfg)
}

// cloneWith copy-constructs src's elements into a new vector using cfg.
func cloneWith[T any](src *Vector[T], cfg config[T]) (*Vector[T], error) {
	dst := &Vector[T]{cfg: cfg}
	buf, err := dst.allocate(src.length)
	if err != nil {
		return nil, err
	}
	from := src.buf.Slots(0, src.length)
	to := buf.Slots(0, src.length)
	for i := range from {
		if err := dst.cfg.elem.copyConstruct(&to[i], &from[i]); err != nil {
			dst.cfg.elem.destroyAll(to[:i])
			return nil, err
		}
	}
	dst.buf.MoveFrom(&buf)
	dst.length = src.length
	return dst, nil
}

// Assign replaces v's elements with copies of src's.
//
// When src does not fit into v's buffer, a full copy is built first and
// swapped in, so a failure leaves v unchanged. Otherwise the overlapping
// prefix is assigned element by element, then src's extra tail is
// copy-constructed or v's surplus tail destroyed. A failure on that path
// stops at the failing element; elements assigned before it keep their new
// values and any tail built so far is destroyed.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}

	if src.length > v.buf.Capacity() {
		tmp, err := cloneWith(src, v.cfg)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		v.allocations++
		v.reallocations++
		tmp.Release()
		return nil
	}

	e := &v.cfg.elem
	dst := v.buf.Slots(0, v.length)
	from := src.buf.Slots(0, src.length)
	n := min(len(dst), len(from))
	for i := 0; i < n; i++ {
		if err := e.assign(&dst[i], &from[i]); err != nil {
			return err
		}
	}

	if src.length > v.length {
		tail := v.buf.Slots(v.length, src.length)
		for i := range tail {
			if err := e.copyConstruct(&tail[i], &from[v.length+i]); err != nil {
				e.destroyAll(tail[:i])
				return err
			}
		}
	} else {
		e.destroyAll(dst[src.length:])
	}
	v.length = src.length
	return nil
}
