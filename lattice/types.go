// Package lattice treats an N-dimensional regular grid as an undirected
// graph: every vertex carries a cell-id and a cell-type tag, and adjacency
// is precomputed once at construction as a compressed sparse row (CSR)
// table for O(1) neighbor iteration.
//
// MaxDimensions bounds the supported grid rank; Moore neighborhoods grow as
// 3^N-1 so unbounded N is both impractical and outside the needs of any
// realistic Cellular Potts lattice.
package lattice

// MaxDimensions is the largest grid rank CellSpace supports.
const MaxDimensions = 8

// Neighborhood selects which cells around a vertex count as adjacent.
type Neighborhood int

const (
	// VonNeumann connects each vertex to its 2*N axis-aligned neighbors.
	VonNeumann Neighborhood = iota
	// Moore connects each vertex to all 3^N-1 neighbors in its cube, including diagonals.
	Moore
)

// String renders the neighborhood kind for diagnostics and logging.
func (n Neighborhood) String() string {
	switch n {
	case VonNeumann:
		return "von-neumann"
	case Moore:
		return "moore"
	default:
		return "unknown"
	}
}

// CellSpace is a finite undirected graph derived from a regular N-dimensional
// grid. Vertex 0-based indices are in row-major (last axis fastest) order.
// NodeID 0 denotes medium; NodeType 0 denotes medium's type.
//
// CellSpace is immutable in topology after construction: shape, periodicity,
// neighborhood, and the CSR adjacency never change. Only the two per-vertex
// attribute arrays (id, type) are mutated during a simulation run.
type CellSpace struct {
	shape        []int
	periodic     []bool
	neighborhood Neighborhood
	strides      []int
	vertexCount  int

	// CSR adjacency: neighbors of vertex v are nbrs[offsets[v]:offsets[v+1]].
	offsets []int32
	nbrs    []int32

	nodeID   []uint32
	nodeType []uint32
}
