// Package connectivity implements the bounded-work articulation test that
// guards every MH copy attempt: a candidate copy touching a non-medium
// cell is rejected if it would split that cell's vertex set into more than
// one connected component.
//
// Rather than a full articulation-point algorithm over the whole cell (which
// could be arbitrarily large), Guard restricts the check to the induced
// subgraph over the target vertex's 2-hop neighborhood: a BFS whose
// traversal predicate is "belongs to the same cell id", with its frontier
// capped at two hops by construction instead of flooding the whole grid.
package connectivity

import "github.com/vellum-sim/cellpotts/lattice"

// Guard holds the reusable, epoch-stamped scratch buffers the articulation
// test needs. One Guard is constructed per CellSpace and reused across
// every mh_step in that simulation's lifetime; it never reallocates once
// built, reused as a per-lattice scratch buffer for the life of the run.
type Guard struct {
	space *lattice.CellSpace

	regionEpoch []uint32
	region      uint32

	visitEpoch []uint32
	visit      uint32

	queue []int32
}

// NewGuard allocates a Guard sized for space. Complexity: O(V) once.
func NewGuard(space *lattice.CellSpace) *Guard {
	v := space.VertexCount()
	return &Guard{
		space:       space,
		regionEpoch: make([]uint32, v),
		visitEpoch:  make([]uint32, v),
		queue:       make([]int32, 0, 64),
	}
}

// Disconnects reports whether overwriting node_id[target] would split
// target's current cell into more than one connected component. Medium
// (cell id 0) is exempt and always returns false. Complexity: O(|N²(t)|),
// independent of the total size of the cell.
func (g *Guard) Disconnects(target int) bool {
	space := g.space
	cellID := space.NodeID(target)
	if cellID == 0 {
		return false
	}

	g.markRegion(target)

	root, siblingCount := g.siblingRoot(target, cellID)
	if siblingCount <= 1 {
		// Zero or one same-cell neighbor: nothing that removing target
		// could possibly split apart within this local view.
		return false
	}

	g.bfsWithinRegion(target, root, cellID)

	for _, u := range space.Neighbors(target) {
		if space.NodeID(int(u)) == cellID && g.visitEpoch[u] != g.visit {
			return true
		}
	}
	return false
}

// markRegion stamps target, N(target), and N(N(target)) with the current
// region epoch, i.e. the induced-subgraph vertex universe the BFS below is
// allowed to explore.
func (g *Guard) markRegion(target int) {
	g.region++
	g.regionEpoch[target] = g.region
	for _, u := range g.space.Neighbors(target) {
		g.regionEpoch[u] = g.region
		for _, w := range g.space.Neighbors(int(u)) {
			g.regionEpoch[w] = g.region
		}
	}
}

// siblingRoot returns one neighbor of target that belongs to cellID (or -1
// if none) plus the count of such neighbors.
func (g *Guard) siblingRoot(target int, cellID uint32) (int32, int) {
	var root int32 = -1
	count := 0
	for _, u := range g.space.Neighbors(target) {
		if g.space.NodeID(int(u)) == cellID {
			if count == 0 {
				root = u
			}
			count++
		}
	}
	return root, count
}

// bfsWithinRegion explores cellID-valued vertices reachable from root
// without passing through target or leaving the marked region.
func (g *Guard) bfsWithinRegion(target int, root int32, cellID uint32) {
	g.visit++
	g.queue = g.queue[:0]
	g.queue = append(g.queue, root)
	g.visitEpoch[root] = g.visit

	for qi := 0; qi < len(g.queue); qi++ {
		u := g.queue[qi]
		for _, w := range g.space.Neighbors(int(u)) {
			if int(w) == target {
				continue
			}
			if g.regionEpoch[w] != g.region || g.space.NodeID(int(w)) != cellID {
				continue
			}
			if g.visitEpoch[w] == g.visit {
				continue
			}
			g.visitEpoch[w] = g.visit
			g.queue = append(g.queue, w)
		}
	}
}
