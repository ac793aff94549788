package penalty

import "github.com/aquilax/go-perlin"

// SpeciesField is an N-D real array aligned with a lattice shape, using the
// same row-major, last-axis-fastest vertex ordering as lattice.CellSpace so
// SpeciesField.At(v) and CellSpace.NodeID(v) always agree on which grid
// cell vertex v denotes.
type SpeciesField struct {
	shape   []int
	strides []int
	values  []float64
}

func newField(shape []int) *SpeciesField {
	strides := make([]int, len(shape))
	acc := 1
	for axis := len(shape) - 1; axis >= 0; axis-- {
		strides[axis] = acc
		acc *= shape[axis]
	}
	return &SpeciesField{shape: append([]int(nil), shape...), strides: strides, values: make([]float64, acc)}
}

// Shape returns the field's per-axis extents.
func (f *SpeciesField) Shape() []int { return append([]int(nil), f.shape...) }

// At returns the concentration at vertex v. Complexity: O(1).
func (f *SpeciesField) At(v int) float64 { return f.values[v] }

// Set overwrites the concentration at vertex v, for callers driving an
// external reaction-diffusion coupling between model steps.
func (f *SpeciesField) Set(v int, value float64) { f.values[v] = value }

// NewSpeciesField builds a SpeciesField of the given shape filled with
// coherent Perlin noise, scaled into [0, 1]. alpha/beta/n follow
// go-perlin's own octave-persistence/frequency-amplitude/octave-count
// parameters; seed makes the field reproducible. Only 1, 2, and 3
// dimensional shapes are supported, since go-perlin exposes Noise1D/2D/3D
// and nothing higher-rank.
func NewSpeciesField(shape []int, alpha, beta float64, n int32, seed int64) (*SpeciesField, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, errConfig("Chemotaxis", "species field generator supports only 1-3 dimensional shapes")
	}
	field := newField(shape)
	p := perlin.NewPerlin(alpha, beta, n, seed)

	coord := make([]int, len(shape))
	for v := range field.values {
		for axis := range shape {
			coord[axis] = v / field.strides[axis] % shape[axis]
		}
		var noise float64
		switch len(shape) {
		case 1:
			noise = p.Noise1D(float64(coord[0]))
		case 2:
			noise = p.Noise2D(float64(coord[0]), float64(coord[1]))
		case 3:
			noise = p.Noise3D(float64(coord[0]), float64(coord[1]), float64(coord[2]))
		}
		field.values[v] = (noise + 1) / 2
	}
	return field, nil
}

// NewLinearGradient builds a SpeciesField that increases linearly from 0 at
// coordinate 0 to 1 at the far edge of the given axis, the deterministic
// field a deterministic directional-drift test calls for.
func NewLinearGradient(shape []int, axis int) (*SpeciesField, error) {
	if axis < 0 || axis >= len(shape) {
		return nil, errConfig("Chemotaxis", "gradient axis out of range")
	}
	field := newField(shape)
	coord := make([]int, len(shape))
	extent := shape[axis]
	for v := range field.values {
		for a := range shape {
			coord[a] = v / field.strides[a] % shape[a]
		}
		if extent > 1 {
			field.values[v] = float64(coord[axis]) / float64(extent-1)
		}
	}
	return field, nil
}
