package pool

import "sync"

// float64SlicePool holds the scratch arrays used while rescaling pump curves
// for each speed sample.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite every
// element before reading it. The returned cleanup function must be called
// (typically with defer) once the slice is no longer referenced.
//
// Example:
//
//	flow, release := pool.GetFloat64Slice(len(pump.Flow))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// GetFloat64Slices retrieves count slices of size elements each and a single
// cleanup function releasing all of them.
func GetFloat64Slices(count, size int) ([][]float64, func()) {
	slices := make([][]float64, count)
	releases := make([]func(), count)
	for i := range count {
		slices[i], releases[i] = GetFloat64Slice(size)
	}

	return slices, func() {
		for _, release := range releases {
			release()
		}
	}
}
