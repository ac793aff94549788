package cellpotts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellum-sim/cellpotts"
	"github.com/vellum-sim/cellpotts/analysis"
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
	"github.com/vellum-sim/cellpotts/penalty"
)

func newEpithelialSim(t *testing.T, shape []int, periodic []bool, kind lattice.Neighborhood, desiredVolume int64, lambda []int64, j [][]int64, seed int64) *cellpotts.Simulation {
	space, err := lattice.NewCellSpace(shape, periodic, kind)
	require.NoError(t, err)
	table, err := celltable.NewCellState([]string{"Epithelial"}, []int64{desiredVolume}, []int{1})
	require.NoError(t, err)

	adh, err := penalty.NewAdhesion(j)
	require.NoError(t, err)
	vol, err := penalty.NewVolume(lambda)
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{adh, vol}, cellpotts.WithSeed(seed), cellpotts.WithTemperature(20))
	require.NoError(t, err)
	return sim
}

// Scenario 1 (scaled down): a single cell on a small periodic Moore
// lattice stays connected and near its desired volume after many steps.
func TestSingleCellStaysConnectedAndNearDesiredVolume(t *testing.T) {
	sim := newEpithelialSim(t, []int{12, 12}, []bool{true}, lattice.Moore, 40,
		[]int64{0, 5}, [][]int64{{0, 20}, {20, 0}}, 7)

	sim.Run(200, nil)

	volume := sim.Table.Volume(1)
	require.InDelta(t, 40, volume, 4, "volume must stay close to its desired target")
	require.Equal(t, int64(144)-volume, medium(sim), "medium count must equal V minus occupied volume")

	require.True(t, cellIsConnected(sim, 1), "cell 1 must remain a single connected component")
}

func medium(sim *cellpotts.Simulation) int64 {
	var count int64
	for v := 0; v < sim.Space.VertexCount(); v++ {
		if sim.Space.NodeID(v) == 0 {
			count++
		}
	}
	return count
}

// cellIsConnected does a plain BFS over the whole lattice, independent of
// ConnectivityGuard, to verify the global invariant after a run.
func cellIsConnected(sim *cellpotts.Simulation, id uint32) bool {
	var start = -1
	for v := 0; v < sim.Space.VertexCount(); v++ {
		if sim.Space.NodeID(v) == id {
			start = v
			break
		}
	}
	if start == -1 {
		return true
	}
	visited := map[int]bool{start: true}
	queue := []int{start}
	count := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range sim.Space.Neighbors(v) {
			if sim.Space.NodeID(int(u)) == id && !visited[int(u)] {
				visited[int(u)] = true
				count++
				queue = append(queue, int(u))
			}
		}
	}
	return int64(count) == sim.Table.Volume(id)
}

// Scenario 2: two cells with strong mutual adhesion (relative to
// cell-medium adhesion) become adjacent within a bounded number of steps.
func TestTwoCellsBecomeAdjacentUnderMutualAdhesion(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{10, 10}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	table, err := celltable.NewCellState([]string{"A", "B"}, []int64{10, 10}, []int{1, 1},
		celltable.WithPositions([][]float64{{2, 2}, {7, 7}}))
	require.NoError(t, err)

	j := [][]int64{{0, 10, 10}, {10, 2, 2}, {10, 2, 2}}
	adh, err := penalty.NewAdhesion(j)
	require.NoError(t, err)
	vol, err := penalty.NewVolume([]int64{0, 5, 5})
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{adh, vol}, cellpotts.WithSeed(42), cellpotts.WithTemperature(10))
	require.NoError(t, err)

	sim.Run(500, nil)

	shared := sharedBoundary(sim, 1, 2)
	require.Greater(t, shared, 0, "cells favoring mutual adhesion should end up touching")
}

func sharedBoundary(sim *cellpotts.Simulation, a, b uint32) int {
	count := 0
	sim.Space.Edges(func(u, v int) {
		idU, idV := sim.Space.NodeID(u), sim.Space.NodeID(v)
		if (idU == a && idV == b) || (idU == b && idV == a) {
			count++
		}
	})
	return count
}

// Scenario 3: a single-vertex cell is never emptied, however many MH
// attempts target it.
func TestSingleVertexCellNeverDisappears(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{10, 10}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	table, err := celltable.NewCellState([]string{"Lone"}, []int64{1}, []int{1})
	require.NoError(t, err)
	vol, err := penalty.NewVolume([]int64{0, 10})
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{vol}, cellpotts.WithSeed(3))
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		sim.MHStep()
		require.GreaterOrEqual(t, sim.Table.Volume(1), int64(1), "a cell must never be emptied down to volume 0")
	}
}

// Scenario 6: a dumbbell-shaped cell rejects a copy on its bridge vertex,
// deterministically, across repeated attempts.
func TestDumbbellBridgeRejectionIsDeterministic(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{3, 7}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	paint := func(r, c int) { space.Set(r*7+c, 1, 1) }
	paint(0, 0)
	paint(1, 0)
	paint(0, 1)
	paint(1, 1)
	paint(1, 2)
	paint(1, 3)
	paint(1, 4)
	paint(0, 5)
	paint(1, 5)
	paint(0, 6)
	paint(1, 6)

	table, err := celltable.NewCellState([]string{"Dumbbell"}, []int64{11}, []int{1})
	require.NoError(t, err)
	table.AddVolume(1, 11)
	vol, err := penalty.NewVolume([]int64{0, 1})
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{vol}, cellpotts.WithSeed(1))
	require.NoError(t, err)

	bridge := 1*7 + 3
	for i := 0; i < 50; i++ {
		info := sim.MHStep()
		if info.Target == bridge && info.TargetID != 0 {
			require.False(t, info.Success, "a copy on the bridge vertex must never be accepted")
		}
	}
}

// Replay determinism: LatticeAt at every recorded model step must reproduce
// the same node_id as an in-memory snapshot taken right after that step.
func TestReplayDeterminism(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{4, 4}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	table, err := celltable.NewCellState([]string{"A"}, []int64{6}, []int{1})
	require.NoError(t, err)
	vol, err := penalty.NewVolume([]int64{0, 3})
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{vol}, cellpotts.WithSeed(99))
	require.NoError(t, err)
	sim.SetRecording(true)

	var snapshots [][]uint32
	for i := 0; i < 8; i++ {
		sim.ModelStep()
		snapshots = append(snapshots, append([]uint32(nil), sim.ArrayIDs()...))
	}

	for step, want := range snapshots {
		got, err := sim.LatticeAt(uint64(step))
		require.NoError(t, err)
		for v := 0; v < got.VertexCount(); v++ {
			require.Equal(t, want[v], got.NodeID(v), "lattice_at(%d) must match the live snapshot taken right after that model step", step)
		}
	}
}

// recordedTrajectory runs sim for n model steps with recording on and
// replays every step through LatticeAt, turning the log into the sequence
// of lattice snapshots analysis.CentroidTrajectory expects.
func recordedTrajectory(t *testing.T, sim *cellpotts.Simulation, n int, cellID uint32) [][]float64 {
	sim.SetRecording(true)
	for i := 0; i < n; i++ {
		sim.ModelStep()
	}
	snapshots := make([]*lattice.CellSpace, n)
	for step := 0; step < n; step++ {
		snap, err := sim.LatticeAt(uint64(step))
		require.NoError(t, err)
		snapshots[step] = snap.Clone()
	}
	return analysis.CentroidTrajectory(snapshots, cellID)
}

// Scenario 4: under the Act model, a single cell's centroid drifts with a
// net displacement much closer to its total path length than an otherwise
// identical cell with migration switched off (lambda 0), whose centroid
// only wanders on volume-driven fluctuations.
func TestMigrationDrivesDirectedCentroidMovement(t *testing.T) {
	shape := []int{16, 16}

	buildSim := func(lambda int64, seed int64) *cellpotts.Simulation {
		space, err := lattice.NewCellSpace(shape, nil, lattice.VonNeumann)
		require.NoError(t, err)
		table, err := celltable.NewCellState([]string{"Motile"}, []int64{20}, []int{1},
			celltable.WithPositions([][]float64{{8, 3}}))
		require.NoError(t, err)

		vol, err := penalty.NewVolume([]int64{0, 10})
		require.NoError(t, err)
		act, err := penalty.NewMigration(20, []int64{0, lambda}, shape)
		require.NoError(t, err)

		sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{vol, act},
			cellpotts.WithSeed(seed), cellpotts.WithTemperature(10))
		require.NoError(t, err)
		return sim
	}

	const steps = 40

	motile := buildSim(200, 11)
	motileTraj := recordedTrajectory(t, motile, steps, 1)
	require.GreaterOrEqual(t, len(motileTraj), 2, "cell 1 must survive long enough to produce a trajectory")

	still := buildSim(0, 11)
	stillTraj := recordedTrajectory(t, still, steps, 1)
	require.GreaterOrEqual(t, len(stillTraj), 2, "cell 1 must survive long enough to produce a trajectory")

	motileRatio := analysis.NetDisplacement(motileTraj) / analysis.TotalDisplacement(motileTraj)
	stillRatio := analysis.NetDisplacement(stillTraj) / analysis.TotalDisplacement(stillTraj)

	require.Greater(t, motileRatio, stillRatio,
		"an Act-model cell's net/total displacement ratio must exceed an otherwise identical cell with migration switched off")
}

// Scenario 5: under Chemotaxis with a linear concentration gradient, a
// cell's centroid drifts toward higher concentration — its displacement
// trajectory's net movement is directed along the gradient axis rather
// than wandering.
func TestChemotaxisDrivesCentroidTowardGradient(t *testing.T) {
	shape := []int{16, 16}

	space, err := lattice.NewCellSpace(shape, nil, lattice.VonNeumann)
	require.NoError(t, err)
	table, err := celltable.NewCellState([]string{"Chemotactic"}, []int64{20}, []int{1},
		celltable.WithPositions([][]float64{{8, 2}}))
	require.NoError(t, err)

	vol, err := penalty.NewVolume([]int64{0, 10})
	require.NoError(t, err)
	field, err := penalty.NewLinearGradient(shape, 1)
	require.NoError(t, err)
	chem, err := penalty.NewChemotaxis([]int64{0, 40}, field, shape)
	require.NoError(t, err)

	sim, err := cellpotts.NewCellPotts(space, table, []cellpotts.Penalty{vol, chem},
		cellpotts.WithSeed(5), cellpotts.WithTemperature(10))
	require.NoError(t, err)

	traj := recordedTrajectory(t, sim, 40, 1)
	require.GreaterOrEqual(t, len(traj), 2, "cell 1 must survive long enough to produce a trajectory")

	first, last := traj[0], traj[len(traj)-1]
	require.Greater(t, last[1], first[1], "the cell's centroid must drift toward the high end of the gradient axis")
}
