package penalty

import "github.com/vellum-sim/cellpotts"

// Volume penalizes deviation from a cell's desired volume: λ_type(c)·(V_c −
// V*_c)². A copy attempt moves exactly one vertex between two cells, so the
// source cell's volume would increase by one and the target cell's volume
// would decrease by one; medium (id 0) never contributes, since DeltaH
// skips the term for id 0 on either side.
type Volume struct {
	lambda []int64
}

// NewVolume returns a Volume penalty with one λ per type id (index 0 is
// medium and is never read).
func NewVolume(lambda []int64) (*Volume, error) {
	if len(lambda) == 0 {
		return nil, errConfig("Volume", "lambda must have at least one entry")
	}
	return &Volume{lambda: lambda}, nil
}

func (p *Volume) Name() string { return "Volume" }

// Validate reports whether lambda covers every declared type id.
func (p *Volume) Validate(numTypes int) error {
	if len(p.lambda) < numTypes {
		return errConfig("Volume", "lambda must have one entry per declared type id")
	}
	return nil
}

// DeltaH computes the squared-deviation change for the source cell (+1
// volume) and the target cell (-1 volume) under the candidate copy.
// Complexity: O(1).
func (p *Volume) DeltaH(ctx *cellpotts.Context) int64 {
	step := ctx.Step
	var delta int64
	if step.SourceID != 0 {
		delta += p.termDelta(ctx, step.SourceID, step.SourceType, 1)
	}
	if step.TargetID != 0 {
		delta += p.termDelta(ctx, step.TargetID, step.TargetType, -1)
	}
	return delta
}

func (p *Volume) termDelta(ctx *cellpotts.Context, id uint32, typeID uint32, sign int64) int64 {
	v := ctx.Table.Volume(id)
	target := ctx.Table.DesiredVolume(id)
	before := v - target
	after := v + sign - target
	return p.lambda[typeID] * (after*after - before*before)
}

// OnCommit and OnTick are no-ops: the actual ±1 volume bookkeeping is
// mechanical and owned by the engine itself, not by this penalty.
func (p *Volume) OnCommit(ctx *cellpotts.Context) {}
func (p *Volume) OnTick(ctx *cellpotts.Context)   {}
