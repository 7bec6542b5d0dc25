// Package vector implements a contiguous growable array for Go with explicit
// control over allocation and element lifetime.
//
// # Overview
//
// The package has two layers:
//
//   - RawBuffer owns a fixed block of slots and nothing else. It does not
//     know which slots hold live elements.
//   - Vector owns one RawBuffer plus a live-element count, and implements
//     growth, insertion, removal, copy and move on top of it.
//
// Slots past Len() always hold the zero value of T, so a removed element
// never keeps its referents reachable.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_, _ = v.Insert(1, 9) // [1 9 2]
//	v.Erase(0)            // [9 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// By default elements follow plain Go value semantics. Types that own
// resources, or tests that need to observe or fail element operations,
// supply hooks with WithElement:
//
//	v := vector.New(vector.WithElement(vector.Element[*File]{
//		Destroy: func(f **File) { (*f).Close() },
//	}))
//
// Destroy runs for every element the vector removes: Erase, PopBack,
// shrinking Resize, Assign and Release.
//
// # Failure Safety
//
// Operations that need a larger buffer (Reserve, growing Resize,
// EmplaceBack, PushBack, Emplace, Insert and Assign from a longer source)
// build the new state in a side buffer and only adopt it once every element
// is in place. If allocation or an element hook fails, whatever was built is
// destroyed, the error is returned and the vector is exactly as before the
// call.
//
// Allocation fails with ErrOutOfMemory when the request cannot be expressed
// as a single allocation, or when it exceeds the cap set by WithMaxCapacity.
//
// Precondition violations (index or position out of range, PopBack on an
// empty vector) panic.
//
// # Growth
//
// A full vector doubles its capacity on append or insert, starting at 1.
// Reserve and growing Resize allocate exactly the requested capacity.
// Shrinking never releases storage.
//
// # Metrics
//
// The vector keeps a few counters for monitoring buffer usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
