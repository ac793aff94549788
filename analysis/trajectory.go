// Package analysis provides offline tools for inspecting cell trajectories
// reconstructed from a History log: centroid extraction from a sequence of
// replayed lattice snapshots, and displacement measures built on top of it.
package analysis

import (
	"errors"
	"math"

	"github.com/vellum-sim/cellpotts/lattice"
)

// ErrCellAbsent indicates a snapshot contains no vertex owned by the
// requested cell id, so no centroid can be computed for it.
var ErrCellAbsent = errors.New("analysis: cell id has no vertices in this snapshot")

// CellCentroid averages the grid coordinates of every vertex currently
// owned by id. Returns ErrCellAbsent if id owns no vertex in space.
func CellCentroid(space *lattice.CellSpace, id uint32) ([]float64, error) {
	dims := len(space.GridShape())
	sum := make([]float64, dims)
	count := 0
	for v := 0; v < space.VertexCount(); v++ {
		if space.NodeID(v) != id {
			continue
		}
		coord := space.Coordinate(v)
		for i, c := range coord {
			sum[i] += float64(c)
		}
		count++
	}
	if count == 0 {
		return nil, ErrCellAbsent
	}
	for i := range sum {
		sum[i] /= float64(count)
	}
	return sum, nil
}

// CentroidTrajectory computes id's centroid at every snapshot, in order.
// Snapshots where id is absent are skipped rather than erroring, so a cell
// that is placed partway through a run still yields a usable (shorter)
// trajectory.
func CentroidTrajectory(snapshots []*lattice.CellSpace, id uint32) [][]float64 {
	out := make([][]float64, 0, len(snapshots))
	for _, space := range snapshots {
		c, err := CellCentroid(space, id)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// TotalDisplacement sums the Euclidean distance between every consecutive
// pair of centroids in trajectory: the total path length the cell's
// centroid walked, including any back-and-forth wiggling. Zero for a
// trajectory of fewer than two points.
func TotalDisplacement(trajectory [][]float64) float64 {
	var total float64
	for i := 1; i < len(trajectory); i++ {
		total += euclidean(trajectory[i-1], trajectory[i])
	}
	return total
}

// NetDisplacement is the straight-line distance between a trajectory's
// first and last centroid, independent of the path taken between them.
// Comparing this against TotalDisplacement distinguishes directed movement
// (the two are close) from an undirected random walk (net is much smaller
// than total). Zero for a trajectory of fewer than two points.
func NetDisplacement(trajectory [][]float64) float64 {
	if len(trajectory) < 2 {
		return 0
	}
	return euclidean(trajectory[0], trajectory[len(trajectory)-1])
}

func euclidean(a, b []float64) float64 {
	var sumSq float64
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}
