package penalty

import "github.com/vellum-sim/cellpotts"

// Chemotaxis biases copies by the gradient of an externally owned species
// field: positive λ drives a cell uphill, negative downhill. The field is
// mutated between model steps by a caller (e.g. a reaction-diffusion
// coupling), never by this penalty itself.
type Chemotaxis struct {
	lambda []int64
	field  *SpeciesField
}

// NewChemotaxis validates that field's shape matches the lattice shape it
// will be evaluated against.
func NewChemotaxis(lambda []int64, field *SpeciesField, latticeShape []int) (*Chemotaxis, error) {
	if len(lambda) == 0 {
		return nil, errConfig("Chemotaxis", "lambda must have at least one entry")
	}
	if !shapesEqual(field.Shape(), latticeShape) {
		return nil, errConfig("Chemotaxis", "species field shape must match lattice shape")
	}
	return &Chemotaxis{lambda: lambda, field: field}, nil
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (p *Chemotaxis) Name() string { return "Chemotaxis" }

// Validate reports whether lambda covers every declared type id.
func (p *Chemotaxis) Validate(numTypes int) error {
	if len(p.lambda) < numTypes {
		return errConfig("Chemotaxis", "lambda must have one entry per declared type id")
	}
	return nil
}

// DeltaH is λ_type(s)·(species[source] − species[target]) for a non-medium
// source, so with positive λ extending a cell to higher concentration lowers
// H; it is 0 for medium, whose contact with the field is never charged.
func (p *Chemotaxis) DeltaH(ctx *cellpotts.Context) int64 {
	step := ctx.Step
	if step.SourceID == 0 {
		return 0
	}
	gradient := p.field.At(step.Source) - p.field.At(step.Target)
	return int64(float64(p.lambda[step.SourceType]) * gradient)
}

func (p *Chemotaxis) OnCommit(ctx *cellpotts.Context) {}
func (p *Chemotaxis) OnTick(ctx *cellpotts.Context)   {}
