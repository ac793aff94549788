package lattice

// computeStrides returns row-major strides for shape, with the last axis
// fastest-varying (stride 1).
func computeStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = acc
		acc *= shape[axis]
	}
	return strides
}

// coordToIndex flattens a coordinate vector into a linear vertex index.
// Complexity: O(N) in the number of axes.
func (s *CellSpace) coordToIndex(coord []int) int {
	idx := 0
	for axis, c := range coord {
		idx += c * s.strides[axis]
	}
	return idx
}

// indexToCoord expands a linear vertex index back into a coordinate vector,
// writing into dst (which must have length len(s.shape)).
// Complexity: O(N) in the number of axes.
func (s *CellSpace) indexToCoord(idx int, dst []int) {
	for axis := range s.shape {
		dst[axis] = idx / s.strides[axis] % s.shape[axis]
	}
}

// offsetsFor enumerates the relative coordinate deltas that define the
// requested neighborhood for a grid of the given rank: 2*N vectors for
// VonNeumann (one step along each axis, each direction), or 3^N-1 vectors
// for Moore (every combination of {-1,0,1} except the all-zero vector).
func offsetsFor(kind Neighborhood, dims int) [][]int {
	if kind == VonNeumann {
		offsets := make([][]int, 0, 2*dims)
		for axis := 0; axis < dims; axis++ {
			for _, d := range [2]int{-1, 1} {
				delta := make([]int, dims)
				delta[axis] = d
				offsets = append(offsets, delta)
			}
		}
		return offsets
	}

	total := 1
	for i := 0; i < dims; i++ {
		total *= 3
	}
	offsets := make([][]int, 0, total-1)
	delta := make([]int, dims)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == dims {
			allZero := true
			for _, d := range delta {
				if d != 0 {
					allZero = false
					break
				}
			}
			if !allZero {
				offsets = append(offsets, append([]int(nil), delta...))
			}
			return
		}
		for _, d := range [3]int{-1, 0, 1} {
			delta[axis] = d
			rec(axis + 1)
		}
	}
	rec(0)
	return offsets
}
