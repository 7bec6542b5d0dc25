package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// item is the element type used with tracker.
type item struct {
	val int
}

// tracker counts element lifecycle operations and fails the n-th call of an
// operation on request (0 never fails).
type tracker struct {
	inits, copies, assigns, relocations, destroys int

	failInit     int
	failCopy     int
	failRelocate int
}

// live returns the number of elements constructed and not yet destroyed.
func (p *tracker) live() int {
	return p.inits + p.copies - p.destroys
}

// newItem returns a constructor for an item holding val.
func (p *tracker) newItem(val int) func(*item) error {
	return func(slot *item) error {
		if p.failInit > 0 && p.inits+1 == p.failInit {
			slot.val = -1
			return errInjected
		}
		p.inits++
		slot.val = val
		return nil
	}
}

// element returns hooks that copy through Copy and relocate with a plain
// transfer.
func (p *tracker) element() Element[item] {
	return Element[item]{
		Init: p.newItem(0),
		Copy: func(dst, src *item) error {
			if p.failCopy > 0 && p.copies+1 == p.failCopy {
				dst.val = -1
				return errInjected
			}
			p.copies++
			*dst = *src
			return nil
		},
		Destroy: func(*item) {
			p.destroys++
		},
	}
}

// fallibleMove adds a Relocate hook to element. Since relocation may now
// fail and a Copy hook exists, migration copies.
func (p *tracker) fallibleMove() Element[item] {
	e := p.element()
	e.Relocate = func(dst, src *item) error {
		if p.failRelocate > 0 && p.relocations+1 == p.failRelocate {
			return errInjected
		}
		p.relocations++
		*dst = *src
		return nil
	}
	return e
}

// moveOnly has a Relocate hook but no Copy hook, so migration relocates.
func (p *tracker) moveOnly() Element[item] {
	e := p.fallibleMove()
	e.Copy = nil
	return e
}

// newTracked returns a vector of items holding vals, with capacity len(vals).
// Counters are reset afterwards so that live() equals len(vals).
func newTracked(t *testing.T, p *tracker, e Element[item], vals ...int) *Vector[item] {
	t.Helper()
	v, err := FromSlice(itemsOf(vals...), WithElement(e))
	require.NoError(t, err)
	*p = tracker{}
	p.inits = len(vals)
	return v
}

func itemsOf(vals ...int) []item {
	out := make([]item, len(vals))
	for i, x := range vals {
		out[i] = item{val: x}
	}
	return out
}

func valuesOf(v *Vector[item]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.val)
	}
	return out
}

func intsOf(v *Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

// requireZeroTail checks that every slot past Len() holds the zero value.
func requireZeroTail[T comparable](t *testing.T, v *Vector[T]) {
	t.Helper()
	var zero T
	for i, x := range v.buf.Slots(v.Len(), v.Cap()) {
		require.Equal(t, zero, x, "slot %d past Len() is not zero", v.Len()+i)
	}
}
