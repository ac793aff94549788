package cellpotts

import (
	"math"

	"github.com/vellum-sim/cellpotts/history"
)

// MHStep runs one Metropolis-Hastings copy attempt: draw target uniformly
// in [0, V), draw source uniformly from N(target), and walk the
// Idle→Proposed→{Rejected-Identity, Rejected-Connectivity, Rejected-Energy,
// Committed}→Idle state machine. No intermediate state is
// observable from outside this call, and there are no suspension points:
// it runs to completion on the calling goroutine.
func (s *Simulation) MHStep() MHStepInfo {
	s.history.MarkStepped()
	s.everStepped = true

	step := &s.step
	*step = MHStepInfo{}

	target := s.rng.IntN(s.Space.VertexCount())
	neighbors := s.Space.Neighbors(target)
	source := int(neighbors[s.rng.IntN(len(neighbors))])

	step.Source = source
	step.Target = target
	step.NeighborsSource = s.Space.Neighbors(source)
	step.NeighborsTarget = s.Space.Neighbors(target)
	step.SourceID = s.Space.NodeID(source)
	step.TargetID = s.Space.NodeID(target)
	step.SourceType = s.Space.NodeType(source)
	step.TargetType = s.Space.NodeType(target)
	step.Step = s.stepCount

	// Rejected-Identity: medium-to-medium and same-cell attempts never
	// change anything.
	if step.SourceID == step.TargetID {
		return *step
	}

	// Rejected-Connectivity: a copy that would empty or disconnect the
	// target's current cell is rejected before energy is ever evaluated.
	if step.TargetID != 0 {
		if s.Table.Volume(step.TargetID) <= 1 {
			return *step
		}
		if s.guard.Disconnects(target) {
			return *step
		}
	}

	var deltaH int64
	for _, p := range s.Penalties {
		deltaH += p.DeltaH(s.ctx())
	}

	if !s.accept(deltaH) {
		return *step
	}

	s.commit(deltaH)
	step.Success = true
	return *step
}

// accept applies the Boltzmann criterion: always accept non-positive ΔH,
// otherwise accept with probability exp(-ΔH/T).
func (s *Simulation) accept(deltaH int64) bool {
	if deltaH <= 0 {
		return true
	}
	return s.rng.Float64() < math.Exp(-float64(deltaH)/s.temperature)
}

// commit applies the accepted copy: lattice write, volume bookkeeping
// (mechanical ±1, owned directly by the engine rather than by any
// penalty), each
// penalty's own OnCommit, and a History append.
func (s *Simulation) commit(deltaH int64) {
	step := &s.step

	s.Space.Set(step.Target, step.SourceID, step.SourceType)

	// Medium (id 0) gets the same ±1 bookkeeping as any other row, so
	// Table.Volume(0) always agrees with the count of zero-id vertices.
	s.Table.AddVolume(step.SourceID, 1)
	s.Table.AddVolume(step.TargetID, -1)

	for _, p := range s.Penalties {
		p.OnCommit(s.ctx())
	}

	s.history.Append(newHistoryEntry(step))
}

func (s *Simulation) ctx() *Context {
	return &Context{Space: s.Space, Table: s.Table, Step: &s.step, RNG: s.rng}
}

func newHistoryEntry(step *MHStepInfo) history.Entry {
	return history.Entry{
		Step:    step.Step,
		Vertex:  int32(step.Target),
		NewID:   step.SourceID,
		NewType: step.SourceType,
	}
}
