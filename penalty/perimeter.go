package penalty

import "github.com/vellum-sim/cellpotts"

// Perimeter penalizes deviation from a cell's desired perimeter, on the
// same (V-V*)² form as Volume but over the boundary-edge count. Unlike
// Volume's fixed ±1, the perimeter delta depends on the target vertex's
// neighborhood, so Perimeter computes and stashes Δp for the source and
// target cells during DeltaH, then writes them into the table in OnCommit —
// two scratch counters Δpᵢ, Δp_j.
type Perimeter struct {
	lambda []int64

	deltaSource int64
	deltaTarget int64
}

// NewPerimeter returns a Perimeter penalty with one λ per type id.
func NewPerimeter(lambda []int64) (*Perimeter, error) {
	if len(lambda) == 0 {
		return nil, errConfig("Perimeter", "lambda must have at least one entry")
	}
	return &Perimeter{lambda: lambda}, nil
}

func (p *Perimeter) Name() string { return "Perimeter" }

// Validate reports whether lambda covers every declared type id.
func (p *Perimeter) Validate(numTypes int) error {
	if len(p.lambda) < numTypes {
		return errConfig("Perimeter", "lambda must have one entry per declared type id")
	}
	return nil
}

// DeltaH inspects N(t) once to compute the net boundary-edge change the
// candidate copy would cause for the source cell (edges from t to
// non-source neighbors become boundary, edges to source neighbors stop
// being boundary) and for the target cell (the reverse), then applies the
// (V-V*)² penalty on those two deltas. Complexity: O(degree(target)).
func (p *Perimeter) DeltaH(ctx *cellpotts.Context) int64 {
	step := ctx.Step
	space := ctx.Space

	var dSrc, dTgt int64
	for _, u := range step.NeighborsTarget {
		neighborID := space.NodeID(int(u))
		if step.TargetID != 0 {
			if neighborID == step.TargetID {
				dTgt++
			} else {
				dTgt--
			}
		}
		if step.SourceID != 0 {
			if neighborID == step.SourceID {
				dSrc--
			} else {
				dSrc++
			}
		}
	}
	p.deltaSource, p.deltaTarget = dSrc, dTgt

	var delta int64
	if step.SourceID != 0 {
		delta += p.termDelta(ctx, step.SourceID, step.SourceType, dSrc)
	}
	if step.TargetID != 0 {
		delta += p.termDelta(ctx, step.TargetID, step.TargetType, dTgt)
	}
	return delta
}

func (p *Perimeter) termDelta(ctx *cellpotts.Context, id, typeID uint32, dp int64) int64 {
	v := ctx.Table.Perimeter(id)
	target := ctx.Table.DesiredPerimeter(id)
	before := v - target
	after := v + dp - target
	return p.lambda[typeID] * (after*after - before*before)
}

// OnCommit writes the scratch deltas computed by the most recent DeltaH
// call into the table's perimeter column, only for an attempt that was
// actually accepted.
func (p *Perimeter) OnCommit(ctx *cellpotts.Context) {
	step := ctx.Step
	if step.SourceID != 0 {
		ctx.Table.AddPerimeter(step.SourceID, p.deltaSource)
	}
	if step.TargetID != 0 {
		ctx.Table.AddPerimeter(step.TargetID, p.deltaTarget)
	}
}

func (p *Perimeter) OnTick(ctx *cellpotts.Context) {}
