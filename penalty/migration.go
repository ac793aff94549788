package penalty

import (
	"math"

	"github.com/vellum-sim/cellpotts"
	"github.com/vellum-sim/cellpotts/lattice"
)

// Migration implements the Act model: every vertex carries a memory value
// in [0, maxAct]; a commit resets the target vertex's memory to maxAct, and
// each model step decays every positive memory by one. A candidate copy is
// favored when the source vertex sits in a "recently active" neighborhood
// of its own cell and disfavored symmetrically on the target side.
type Migration struct {
	maxAct int64
	lambda []int64
	memory []int64
}

// NewMigration allocates node_memory sized to the product of shape (one
// slot per lattice vertex) and validates maxAct is positive.
func NewMigration(maxAct int64, lambda []int64, shape []int) (*Migration, error) {
	if maxAct <= 0 {
		return nil, errConfig("Migration", "maxAct must be positive")
	}
	if len(lambda) == 0 {
		return nil, errConfig("Migration", "lambda must have at least one entry")
	}
	v := 1
	for _, extent := range shape {
		if extent <= 0 {
			return nil, errConfig("Migration", "shape extents must be positive")
		}
		v *= extent
	}
	return &Migration{maxAct: maxAct, lambda: lambda, memory: make([]int64, v)}, nil
}

func (p *Migration) Name() string { return "Migration" }

// Validate reports whether lambda covers every declared type id.
func (p *Migration) Validate(numTypes int) error {
	if len(p.lambda) < numTypes {
		return errConfig("Migration", "lambda must have one entry per declared type id")
	}
	return nil
}

// MemoryAt reports the current Act-model memory of vertex v.
func (p *Migration) MemoryAt(v int) int64 { return p.memory[v] }

// DeltaH computes -(λ_type(s)/maxAct)*GM(t in cell of s) +
// (λ_type(t)/maxAct)*GM(s in cell of t), scaling by maxAct in the numerator
// and truncating toward zero.
func (p *Migration) DeltaH(ctx *cellpotts.Context) int64 {
	step := ctx.Step
	space := ctx.Space

	gmSourceCell := p.geometricMean(space, step.Target, step.NeighborsTarget, step.SourceID)
	gmTargetCell := p.geometricMean(space, step.Source, step.NeighborsSource, step.TargetID)

	numerator := -float64(p.lambda[step.SourceType])*gmSourceCell + float64(p.lambda[step.TargetType])*gmTargetCell
	return int64(numerator / float64(p.maxAct))
}

// geometricMean averages node_memory over the subset of {center} ∪
// neighbors that belongs to cellID, treating an empty subset as 0 (the
// degenerate case worth calling out explicitly) and any zero-memory
// member as collapsing the whole product to 0.
func (p *Migration) geometricMean(space *lattice.CellSpace, center int, neighbors []int32, cellID uint32) float64 {
	members := make([]int, 0, len(neighbors)+1)
	if space.NodeID(center) == cellID {
		members = append(members, center)
	}
	for _, u := range neighbors {
		if space.NodeID(int(u)) == cellID {
			members = append(members, int(u))
		}
	}
	if len(members) == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range members {
		m := p.memory[v]
		if m == 0 {
			return 0
		}
		sumLog += math.Log(float64(m))
	}
	return math.Exp(sumLog / float64(len(members)))
}

// OnCommit resets the target vertex's memory to maxAct, the only per-copy
// mutation the Act model makes to node_memory.
func (p *Migration) OnCommit(ctx *cellpotts.Context) {
	p.memory[ctx.Step.Target] = p.maxAct
}

// OnTick decays every positive memory by one, floored at zero, once per
// model step after all V attempts.
func (p *Migration) OnTick(ctx *cellpotts.Context) {
	for i, m := range p.memory {
		if m > 0 {
			p.memory[i] = m - 1
		}
	}
}
