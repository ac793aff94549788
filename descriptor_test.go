package cellpotts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellum-sim/cellpotts"
	"github.com/vellum-sim/cellpotts/lattice"
)

func sampleDescriptor() *cellpotts.Descriptor {
	d := cellpotts.NewDescriptor([]int{5, 5}, []bool{false}, lattice.Moore)
	d.Cells = []cellpotts.CellDescriptor{
		{Name: "Epithelial", DesiredVolume: 8, DesiredPerimeter: 12, Count: 2},
	}
	d.Penalties = []cellpotts.PenaltySpec{
		{Kind: "adhesion", Params: map[string]interface{}{"j": [][]int64{{0, 10}, {10, 2}}}},
	}
	return d
}

func TestDescriptorYAMLRoundTrip(t *testing.T) {
	d := sampleDescriptor()

	data, err := d.ToYAML()
	require.NoError(t, err)

	got, err := cellpotts.FromYAML(data)
	require.NoError(t, err)

	require.Equal(t, d.RunID, got.RunID)
	require.Equal(t, d.Shape, got.Shape)
	require.Equal(t, d.Neighborhood, got.Neighborhood)
	require.Equal(t, d.Cells, got.Cells)
	require.Len(t, got.Penalties, 1)
	require.Equal(t, "adhesion", got.Penalties[0].Kind)
}

func TestDescriptorValidateAcceptsWellFormedDocument(t *testing.T) {
	d := sampleDescriptor()
	require.NoError(t, d.Validate())
}

func TestDescriptorValidateRejectsMissingNeighborhood(t *testing.T) {
	d := sampleDescriptor()
	d.Neighborhood = ""
	require.Error(t, d.Validate())
}

func TestDescriptorValidateRejectsNegativeShape(t *testing.T) {
	d := sampleDescriptor()
	d.Shape = []int{5, -1}
	require.Error(t, d.Validate())
}

func TestDescriptorValidateRejectsZeroCellCount(t *testing.T) {
	d := sampleDescriptor()
	d.Cells[0].Count = 0
	require.Error(t, d.Validate())
}

func TestDescriptorValidateRejectsNonPositiveTemperature(t *testing.T) {
	d := sampleDescriptor()
	d.Temperature = 0
	require.Error(t, d.Validate())
}

func TestBuildCellSpaceHonorsNeighborhoodAndShape(t *testing.T) {
	d := sampleDescriptor()

	space, err := d.BuildCellSpace()
	require.NoError(t, err)
	require.Equal(t, 25, space.VertexCount())
	require.Equal(t, lattice.Moore, space.NeighborhoodKind())
}

func TestBuildCellTableInstantiatesDeclaredCellCount(t *testing.T) {
	d := sampleDescriptor()

	table, err := d.BuildCellTable()
	require.NoError(t, err)
	require.Equal(t, 2, table.CellCount())
	require.Equal(t, int64(8), table.DesiredVolume(1))
	require.Equal(t, int64(12), table.DesiredPerimeter(2))
}

func TestVonNeumannIsTheDefaultNeighborhoodString(t *testing.T) {
	d := cellpotts.NewDescriptor([]int{3, 3}, nil, lattice.VonNeumann)
	require.Equal(t, "von-neumann", d.Neighborhood)
}
