package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellum-sim/cellpotts"
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
	"github.com/vellum-sim/cellpotts/penalty"
)

// stepBetween builds a minimal Context/MHStepInfo for a candidate copy from
// source to target, with both vertices' neighbor slices already resolved.
func stepBetween(space *lattice.CellSpace, table *celltable.CellTable, source, target int) *cellpotts.Context {
	step := &cellpotts.MHStepInfo{
		Source:          source,
		Target:          target,
		NeighborsSource: space.Neighbors(source),
		NeighborsTarget: space.Neighbors(target),
		SourceID:        space.NodeID(source),
		TargetID:        space.NodeID(target),
		SourceType:      space.NodeType(source),
		TargetType:      space.NodeType(target),
	}
	return &cellpotts.Context{Space: space, Table: table, Step: step}
}

func smallSpace(t *testing.T) (*lattice.CellSpace, *celltable.CellTable) {
	space, err := lattice.NewCellSpace([]int{1, 5}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	// Cell 1 occupies columns 0-1, medium elsewhere.
	space.Set(0, 1, 1)
	space.Set(1, 1, 1)

	table, err := celltable.NewCellState([]string{"A"}, []int64{10}, []int{1})
	require.NoError(t, err)
	table.AddVolume(1, 2) // two vertices currently occupied
	return space, table
}

func TestAdhesionRejectsAsymmetricMatrix(t *testing.T) {
	_, err := penalty.NewAdhesion([][]int64{{0, 1}, {2, 0}})
	require.Error(t, err)
	require.True(t, cellpotts.IsConfigurationError(err))
}

func TestAdhesionDeltaHCountsMedioumImbalance(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{3, 3}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	// Cell 1 occupies (0,0) and (0,1); every other vertex is medium.
	space.Set(0, 1, 1)
	space.Set(1, 1, 1)
	table, err := celltable.NewCellState([]string{"A"}, []int64{10}, []int{1})
	require.NoError(t, err)

	j := [][]int64{{0, 10}, {10, 0}}
	adh, err := penalty.NewAdhesion(j)
	require.NoError(t, err)

	// Target (1,1)=idx4 has one cell-1 neighbor (source, idx1=(0,1)) and
	// three medium neighbors: growing cell 1 here removes one boundary
	// edge to source but exposes three new ones, a net +20 under J=10.
	ctx := stepBetween(space, table, 1, 4)
	require.Equal(t, int64(20), adh.DeltaH(ctx))
}

func TestVolumeDeltaHPrefersGrowthTowardDesired(t *testing.T) {
	space, table := smallSpace(t)
	vol, err := penalty.NewVolume([]int64{0, 5})
	require.NoError(t, err)

	ctx := stepBetween(space, table, 1, 2)
	delta := vol.DeltaH(ctx)
	// Current volume 2, desired 10: growing by one vertex should lower H.
	require.Less(t, delta, int64(0))
}

func TestPerimeterCommitWritesScratchDeltas(t *testing.T) {
	space, err := lattice.NewCellSpace([]int{3, 3}, nil, lattice.VonNeumann)
	require.NoError(t, err)
	// Cell 1 occupies (0,0) and (0,1); every other vertex is medium.
	space.Set(0, 1, 1)
	space.Set(1, 1, 1)
	table, err := celltable.NewCellState([]string{"A"}, []int64{10}, []int{1})
	require.NoError(t, err)
	table.AddVolume(1, 2)
	per, err := penalty.NewPerimeter([]int64{0, 3})
	require.NoError(t, err)

	// Copying cell 1 into (1,1)=idx4 removes its one boundary edge to the
	// source (idx1) and adds three edges to medium: perimeter 3 becomes 5.
	ctx := stepBetween(space, table, 1, 4)
	_ = per.DeltaH(ctx)

	before := table.Perimeter(1)
	per.OnCommit(ctx)
	require.Equal(t, before+2, table.Perimeter(1))
}

func TestMigrationGeometricMeanZeroWhenEmpty(t *testing.T) {
	space, table := smallSpace(t)
	mig, err := penalty.NewMigration(20, []int64{0, 200}, space.GridShape())
	require.NoError(t, err)

	ctx := stepBetween(space, table, 1, 2)
	// No memory has been set yet anywhere, so both GM terms are 0 and ΔH
	// must be exactly 0 regardless of λ.
	require.Equal(t, int64(0), mig.DeltaH(ctx))

	mig.OnCommit(ctx)
	require.Equal(t, int64(20), migrationMemoryAt(mig, ctx.Step.Target))
}

func TestChemotaxisZeroOnMediumSource(t *testing.T) {
	space, table := smallSpace(t)
	field, err := penalty.NewLinearGradient(space.GridShape(), 1)
	require.NoError(t, err)
	chem, err := penalty.NewChemotaxis([]int64{0, 100}, field, space.GridShape())
	require.NoError(t, err)

	// Source=2 is medium.
	ctx := stepBetween(space, table, 2, 3)
	require.Equal(t, int64(0), chem.DeltaH(ctx))
}

func TestChemotaxisShapeMismatchRejected(t *testing.T) {
	field, err := penalty.NewLinearGradient([]int{1, 5}, 1)
	require.NoError(t, err)
	_, err = penalty.NewChemotaxis([]int64{0, 1}, field, []int{2, 5})
	require.Error(t, err)
	require.True(t, cellpotts.IsConfigurationError(err))
}

// migrationMemoryAt reads a vertex's Act-model memory through Migration's
// exported MemoryAt accessor, since node_memory itself is private.
func migrationMemoryAt(mig *penalty.Migration, v int) int64 {
	return mig.MemoryAt(v)
}
