package vector

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	return int(slotSize[T]())
}

// BytesReserved returns the size in bytes of the current buffer.
func (v *Vector[T]) BytesReserved() int {
	return v.Cap() * v.ElemSize()
}

// BytesInUse returns the size in bytes of the live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.length * v.ElemSize()
}

// Utilization reports which fraction of the buffer's slots hold live
// elements. An unallocated vector reports 0.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.length) / float64(v.Cap())
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.length,
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		BytesReserved: v.BytesReserved(),
		BytesInUse:    v.BytesInUse(),
		Utilization:   v.Utilization(),
		Allocations:   v.allocations,
		Reallocations: v.reallocations,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slots in the current buffer
	ElemSize      int     // Bytes per slot
	BytesReserved int     // Cap * ElemSize
	BytesInUse    int     // Len * ElemSize
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
	Allocations   int     // Buffers obtained from the allocator
	Reallocations int     // Times the elements moved to a new buffer
}
