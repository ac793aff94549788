package cellpotts

import (
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/lattice"
)

// MHStepInfo is the transient scratch for a single Metropolis-Hastings
// attempt, reused across every call to mh_step rather than allocated per
// attempt. Source is the vertex supplying the candidate id; Target is the
// vertex whose id would be overwritten.
type MHStepInfo struct {
	Source, Target                 int
	NeighborsSource, NeighborsTarget []int32
	SourceID, TargetID              uint32
	SourceType, TargetType          uint32
	Step                            uint64
	Success                         bool
}

// Context is the read/write view PenaltyKit implementations receive for
// both ΔH evaluation and commit/tick callbacks. A single shared struct
// (rather than separate read-only and write views) keeps the hot path
// allocation-free; correctness relies on mh_step only calling OnCommit
// after an attempt is already accepted, per the Idle→Proposed→{...} state
// machine MHEngine drives.
type Context struct {
	Space *lattice.CellSpace
	Table *celltable.CellTable
	Step  *MHStepInfo
	RNG   *RNG
}

// Penalty is the trait every energy term implements: compute a candidate
// copy's contribution to ΔH, then, only for attempts that are accepted,
// commit any auxiliary state the penalty itself owns (the
// ownership note: "Penalty auxiliary state... is owned by the penalty").
// OnTick runs once per model_step, after all V attempts, for penalties
// with time-dependent auxiliary state such as Migration's decaying memory.
type Penalty interface {
	Name() string
	// Validate reports whether this penalty's per-type parameters (a λ
	// vector, an adhesion matrix, ...) are long enough to be indexed by
	// every type id declared in the cell table. numTypes includes medium
	// (type id 0), so a parameter slice must have length >= numTypes.
	Validate(numTypes int) error
	DeltaH(ctx *Context) int64
	OnCommit(ctx *Context)
	OnTick(ctx *Context)
}
