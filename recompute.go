package cellpotts

import (
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
)

// recomputePerimeters does a full O(V*d) boundary-edge recount and writes
// the result into table. NewCellPotts calls it after placement, the one
// non-MH mutation of the lattice in this module, since MHEngine's own
// incremental Δp bookkeeping is only valid against a perimeter column it
// itself produced.
func recomputePerimeters(space *lattice.CellSpace, table *celltable.CellTable) {
	n := table.CellCount()
	counts := make([]int64, n+1)

	space.Edges(func(u, v int) {
		idU := space.NodeID(u)
		idV := space.NodeID(v)
		if idU == idV {
			return
		}
		if idU != 0 {
			counts[idU]++
		}
		if idV != 0 {
			counts[idV]++
		}
	})

	for id := uint32(1); id <= uint32(n); id++ {
		table.SetPerimeter(id, counts[id])
	}
}

// checkInvariants verifies the global invariants that must
// hold after every accepted attempt: total occupied volume equals V,
// node_type agrees with the owning cell's declared type for every vertex,
// the cached volume column matches a recount, and no cell's perimeter is
// negative. No code in this module calls it; it is off the hot path.
func checkInvariants(space *lattice.CellSpace, table *celltable.CellTable) error {
	var total int64
	n := table.CellCount()
	volumes := make([]int64, n+1)
	for v := 0; v < space.VertexCount(); v++ {
		id := space.NodeID(v)
		volumes[id]++
		if space.NodeType(v) != table.TypeID(id) {
			return NewInvariantViolation(id, "node_type disagrees with cell's declared type")
		}
	}
	for _, c := range volumes {
		total += c
	}
	if total != int64(space.VertexCount()) {
		return NewInvariantViolation(0, "total occupied volume does not equal vertex count")
	}
	for id := uint32(0); id <= uint32(n); id++ {
		if volumes[id] != table.Volume(id) {
			return NewInvariantViolation(id, "cached volume column disagrees with recount")
		}
	}
	for id := uint32(1); id <= uint32(n); id++ {
		if table.Perimeter(id) < 0 {
			return NewInvariantViolation(id, "perimeter is negative")
		}
	}
	return nil
}
