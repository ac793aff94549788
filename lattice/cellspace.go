package lattice

// NewCellSpace builds a CellSpace over a regular grid of the given shape.
// periodic must either be nil (no axis wraps), have length 1 (broadcast to
// every axis), or have the same length as shape (one flag per axis).
// Complexity: O(V*d) time and memory, where d is 2*N (VonNeumann) or 3^N-1
// (Moore); adjacency is computed once here and never rebuilt.
func NewCellSpace(shape []int, periodic []bool, neighborhood Neighborhood) (*CellSpace, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	if len(shape) > MaxDimensions {
		return nil, ErrTooManyDimensions
	}
	for _, extent := range shape {
		if extent <= 0 {
			return nil, ErrNonPositiveExtent
		}
	}

	axisPeriodic, err := broadcastPeriodicity(periodic, len(shape))
	if err != nil {
		return nil, err
	}

	shapeCopy := append([]int(nil), shape...)
	strides := computeStrides(shapeCopy)
	vertexCount := 1
	for _, extent := range shapeCopy {
		vertexCount *= extent
	}

	s := &CellSpace{
		shape:        shapeCopy,
		periodic:     axisPeriodic,
		neighborhood: neighborhood,
		strides:      strides,
		vertexCount:  vertexCount,
		nodeID:       make([]uint32, vertexCount),
		nodeType:     make([]uint32, vertexCount),
	}
	s.buildAdjacency()

	return s, nil
}

func broadcastPeriodicity(periodic []bool, dims int) ([]bool, error) {
	switch len(periodic) {
	case 0:
		return make([]bool, dims), nil
	case 1:
		out := make([]bool, dims)
		for i := range out {
			out[i] = periodic[0]
		}
		return out, nil
	case dims:
		return append([]bool(nil), periodic...), nil
	default:
		return nil, ErrPeriodicityLength
	}
}

// buildAdjacency precomputes the CSR neighbor table. Each directed half of
// an undirected edge is emitted from both endpoints so Neighbors(v) is an
// O(1) slice lookup; Edges() later re-derives the u<v canonical form.
func (s *CellSpace) buildAdjacency() {
	offsets := offsetsFor(s.neighborhood, len(s.shape))
	degree := make([]int32, s.vertexCount)
	coord := make([]int, len(s.shape))
	neighborCoord := make([]int, len(s.shape))

	// Pass 1: count degrees so offsets can be computed without reallocation.
	for v := 0; v < s.vertexCount; v++ {
		s.indexToCoord(v, coord)
		for _, delta := range offsets {
			if s.neighborAt(coord, delta, neighborCoord) {
				degree[v]++
			}
		}
	}

	s.offsets = make([]int32, s.vertexCount+1)
	for v := 0; v < s.vertexCount; v++ {
		s.offsets[v+1] = s.offsets[v] + degree[v]
	}
	s.nbrs = make([]int32, s.offsets[s.vertexCount])

	// Pass 2: fill, using a cursor per vertex that starts at offsets[v].
	cursor := append([]int32(nil), s.offsets[:s.vertexCount]...)
	for v := 0; v < s.vertexCount; v++ {
		s.indexToCoord(v, coord)
		for _, delta := range offsets {
			if s.neighborAt(coord, delta, neighborCoord) {
				s.nbrs[cursor[v]] = int32(s.coordToIndex(neighborCoord))
				cursor[v]++
			}
		}
	}
}

// neighborAt applies delta to coord, wrapping periodic axes modularly and
// rejecting (returning false) if a non-periodic axis would leave the grid.
func (s *CellSpace) neighborAt(coord, delta, dst []int) bool {
	for axis := range s.shape {
		c := coord[axis] + delta[axis]
		extent := s.shape[axis]
		if c < 0 || c >= extent {
			if !s.periodic[axis] {
				return false
			}
			c = ((c % extent) + extent) % extent
		}
		dst[axis] = c
	}
	return true
}

// VertexCount returns the total number of vertices V = product(shape).
// Complexity: O(1).
func (s *CellSpace) VertexCount() int { return s.vertexCount }

// Neighbors returns the neighbor indices of v as a zero-copy slice view
// into the CSR backing array. The returned slice must not be retained
// across a call to any mutating method.
// Complexity: O(1) plus O(degree) to iterate.
func (s *CellSpace) Neighbors(v int) []int32 {
	return s.nbrs[s.offsets[v]:s.offsets[v+1]]
}

// Degree reports the neighbor count of v. Complexity: O(1).
func (s *CellSpace) Degree(v int) int {
	return int(s.offsets[v+1] - s.offsets[v])
}

// NodeID returns the cell-id occupying vertex v (0 = medium).
// Complexity: O(1).
func (s *CellSpace) NodeID(v int) uint32 { return s.nodeID[v] }

// NodeType returns the cell-type tag of vertex v (0 = medium type).
// Complexity: O(1).
func (s *CellSpace) NodeType(v int) uint32 { return s.nodeType[v] }

// Set assigns the cell-id and cell-type of vertex v. Callers are
// responsible for keeping node_type consistent with the owning cell's
// declared type (CellTable invariant (ii) in the data model).
// Complexity: O(1).
func (s *CellSpace) Set(v int, id, typeID uint32) {
	s.nodeID[v] = id
	s.nodeType[v] = typeID
}

// GridShape returns a copy of the per-axis extents.
// Complexity: O(N) in the number of axes.
func (s *CellSpace) GridShape() []int { return append([]int(nil), s.shape...) }

// NeighborhoodKind reports the configured adjacency kind.
func (s *CellSpace) NeighborhoodKind() Neighborhood { return s.neighborhood }

// IsPeriodic reports whether the given axis wraps. Returns ErrAxisOutOfRange
// for an axis index outside [0, len(shape)).
// Complexity: O(1).
func (s *CellSpace) IsPeriodic(axis int) (bool, error) {
	if axis < 0 || axis >= len(s.shape) {
		return false, ErrAxisOutOfRange
	}
	return s.periodic[axis], nil
}

// Coordinate exposes the vertex-index-to-coordinate mapping used internally,
// returning a freshly allocated slice safe for the caller to retain.
// Complexity: O(N) in the number of axes.
func (s *CellSpace) Coordinate(v int) []int {
	coord := make([]int, len(s.shape))
	s.indexToCoord(v, coord)
	return coord
}

// Edges invokes fn once for every undirected edge (u, v) with u < v.
// Edge count is fixed at construction; this does not allocate a result
// slice so callers that only need a count or a streaming fold pay no
// intermediate cost.
// Complexity: O(V*d).
func (s *CellSpace) Edges(fn func(u, v int)) {
	for u := 0; u < s.vertexCount; u++ {
		for _, v := range s.Neighbors(u) {
			if int(v) > u {
				fn(u, int(v))
			}
		}
	}
}

// Clone deep-copies the mutable per-vertex attribute arrays into a new
// CellSpace sharing the same (immutable) topology. Used by history.Log for
// its replay baseline, and by callers of LatticeAt to retain a snapshot independent of the shared scratch
// lattice the replay function mutates.
// Complexity: O(V).
func (s *CellSpace) Clone() *CellSpace {
	clone := &CellSpace{
		shape:        s.shape,
		periodic:     s.periodic,
		neighborhood: s.neighborhood,
		strides:      s.strides,
		vertexCount:  s.vertexCount,
		offsets:      s.offsets,
		nbrs:         s.nbrs,
		nodeID:       append([]uint32(nil), s.nodeID...),
		nodeType:     append([]uint32(nil), s.nodeType...),
	}
	return clone
}
