package cellpotts

import (
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
)

// place seeds and grows every cell declared in table onto space, following
// cells with a position column entry are seeded at that
// centroid; otherwise seeds are drawn uniformly at random among distinct
// medium vertices. Every seed then grows breadth-first, one vertex per
// round-robin turn across all still-growing cells, until every cell either
// reaches its desired volume or the lattice is exhausted.
func place(space *lattice.CellSpace, table *celltable.CellTable, rng *RNG) error {
	n := table.CellCount()
	if n == 0 {
		table.SetVolume(0, int64(space.VertexCount()))
		return nil
	}

	var totalDesired int64
	for id := uint32(1); id <= uint32(n); id++ {
		totalDesired += table.DesiredVolume(id)
	}
	if totalDesired > int64(space.VertexCount()) {
		return NewPlacementError("sum of desired volumes exceeds lattice capacity")
	}

	seeds, err := chooseSeeds(space, table, n, rng)
	if err != nil {
		return err
	}

	frontiers := make([][]int, n+1)
	for i, v := range seeds {
		id := uint32(i + 1)
		space.Set(v, id, table.TypeID(id))
		table.AddVolume(id, 1)
		frontiers[id] = []int{v}
	}

	grow(space, table, frontiers, n)

	var occupied int64
	for id := uint32(1); id <= uint32(n); id++ {
		occupied += table.Volume(id)
	}
	table.SetVolume(0, int64(space.VertexCount())-occupied)
	return nil
}

// chooseSeeds returns one seed vertex per cell id, in id order.
func chooseSeeds(space *lattice.CellSpace, table *celltable.CellTable, n int, rng *RNG) ([]int, error) {
	seeds := make([]int, n)

	havePositions := true
	for id := uint32(1); id <= uint32(n); id++ {
		if table.Position(id) == nil {
			havePositions = false
			break
		}
	}

	if havePositions {
		for id := uint32(1); id <= uint32(n); id++ {
			v, err := coordToVertex(space, table.Position(id))
			if err != nil {
				return nil, err
			}
			seeds[id-1] = v
		}
		return seeds, nil
	}

	used := make(map[int]bool, n)
	vertexCount := space.VertexCount()
	for id := uint32(1); id <= uint32(n); id++ {
		placed := false
		for attempt := 0; attempt < vertexCount*4; attempt++ {
			v := rng.IntN(vertexCount)
			if used[v] || space.NodeID(v) != 0 {
				continue
			}
			used[v] = true
			seeds[id-1] = v
			placed = true
			break
		}
		if !placed {
			return nil, NewPlacementError("could not find a free seed vertex for a cell")
		}
	}
	return seeds, nil
}

// coordToVertex rounds a centroid to the nearest grid coordinate and
// validates it lies within bounds.
func coordToVertex(space *lattice.CellSpace, position []float64) (int, error) {
	shape := space.GridShape()
	if len(position) != len(shape) {
		return 0, NewPlacementError("position dimensionality does not match lattice shape")
	}
	coord := make([]int, len(shape))
	for axis, p := range position {
		c := int(p + 0.5)
		if c < 0 || c >= shape[axis] {
			return 0, NewPlacementError("position is out of lattice bounds")
		}
		coord[axis] = c
	}
	return vertexFromCoord(space, coord), nil
}

func vertexFromCoord(space *lattice.CellSpace, coord []int) int {
	idx := 0
	shape := space.GridShape()
	stride := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		idx += coord[axis] * stride
		stride *= shape[axis]
	}
	return idx
}

// grow runs round-robin BFS expansion until no cell's frontier has an
// unclaimed medium neighbor to offer, or every cell reached its desired
// volume. Complexity: O(V) total claims across the whole call.
func grow(space *lattice.CellSpace, table *celltable.CellTable, frontiers [][]int, n int) {
	for {
		progressed := false
		for id := uint32(1); id <= uint32(n); id++ {
			if table.Volume(id) >= table.DesiredVolume(id) {
				continue
			}
			claimed := claimOne(space, table, frontiers, id)
			if claimed {
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// claimOne pops frontier vertices for id until it finds one with an
// unclaimed medium neighbor, claims that neighbor, and pushes it onto the
// frontier. Exhausted frontier entries with no medium neighbors left are
// dropped permanently.
func claimOne(space *lattice.CellSpace, table *celltable.CellTable, frontiers [][]int, id uint32) bool {
	frontier := frontiers[id]
	for len(frontier) > 0 {
		v := frontier[0]
		claimedNeighbor := -1
		for _, u := range space.Neighbors(v) {
			if space.NodeID(int(u)) == 0 {
				claimedNeighbor = int(u)
				break
			}
		}
		if claimedNeighbor == -1 {
			frontier = frontier[1:]
			continue
		}
		space.Set(claimedNeighbor, id, table.TypeID(id))
		table.AddVolume(id, 1)
		frontier = append(frontier, claimedNeighbor)
		frontiers[id] = frontier
		return true
	}
	frontiers[id] = frontier
	return false
}
