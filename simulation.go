// Package cellpotts implements a Cellular Potts Model simulation core:
// a lattice of cells evolved by Metropolis-Hastings copy attempts under a
// pluggable set of energy terms (PenaltyKit), guarded against
// disconnecting or emptying a cell, with append-only history and replay.
package cellpotts

import (
	"github.com/vellum-sim/cellpotts/celltable"
	"github.com/vellum-sim/cellpotts/connectivity"
	"github.com/vellum-sim/cellpotts/history"
	"github.com/vellum-sim/cellpotts/lattice"
)

// Simulation is the sole owner of its lattice, table, penalty list,
// connectivity guard, history log, RNG, and temperature, under a
// single-threaded ownership model. Multiple Simulations may run in
// parallel on separate threads as long as they share no mutable penalty
// state (a chemotaxis species field shared across Simulations must be
// guarded externally by the caller).
type Simulation struct {
	Space     *lattice.CellSpace
	Table     *celltable.CellTable
	Penalties []Penalty

	guard   *connectivity.Guard
	history *history.Log
	rng     *RNG

	temperature float64
	stepCount   uint64
	recording   bool
	everStepped bool

	step MHStepInfo
}

// SimOption configures NewCellPotts beyond its required arguments,
// as functional options.
type SimOption func(*Simulation)

// WithSeed seeds the simulation's RNG deterministically. Without this
// option the RNG is seeded with 1, so every simulation built without it
// draws the same random stream.
func WithSeed(seed int64) SimOption {
	return func(s *Simulation) { s.rng = NewRNG(seed) }
}

// WithTemperature sets the initial Boltzmann temperature (default 1.0).
func WithTemperature(t float64) SimOption {
	return func(s *Simulation) { s.temperature = t }
}

// NewCellPotts builds a Simulation: it places every cell declared in table
// onto space (by position if the table carries one, otherwise a random
// seed-and-grow), recomputes perimeters for the placed configuration, and
// wraps space with a ConnectivityGuard and an empty History log.
func NewCellPotts(space *lattice.CellSpace, table *celltable.CellTable, penalties []Penalty, opts ...SimOption) (*Simulation, error) {
	s := &Simulation{
		Space:       space,
		Table:       table,
		Penalties:   penalties,
		rng:         NewRNG(1),
		temperature: 1.0,
	}
	for _, opt := range opts {
		opt(s)
	}

	numTypes := table.NumTypes()
	for _, p := range penalties {
		if err := p.Validate(numTypes); err != nil {
			return nil, err
		}
	}

	if err := place(space, table, s.rng); err != nil {
		return nil, err
	}
	recomputePerimeters(space, table)

	s.guard = connectivity.NewGuard(space)
	s.history = history.NewLog(space)
	return s, nil
}

// SetTemperature updates the Boltzmann temperature used by subsequent
// attempts.
func (s *Simulation) SetTemperature(t float64) { s.temperature = t }

// SetRecording toggles History recording. See history.Log.SetRecording.
func (s *Simulation) SetRecording(on bool) {
	s.history.SetRecording(on, s.Space)
	s.recording = on
}

// Recording reports whether the log is currently accepting appends.
// Returns history.ErrNoStepsYet if no mh_step attempt has ever been made.
func (s *Simulation) Recording() (bool, error) { return s.history.Recording() }

// LatticeAt reconstructs the lattice as of step t. See history.Log.LatticeAt.
func (s *Simulation) LatticeAt(t uint64) (*lattice.CellSpace, error) {
	return s.history.LatticeAt(t)
}

// CountCells returns the number of non-medium cell rows (including
// removed-but-unrenumbered rows, matching CellTable.CellCount).
func (s *Simulation) CountCells() int { return s.Table.CellCount() }

// CountCellTypes returns the number of distinct non-medium type ids
// currently in use.
func (s *Simulation) CountCellTypes() int {
	seen := make(map[uint32]bool)
	n := s.Table.CellCount()
	for id := uint32(1); id <= uint32(n); id++ {
		if s.Table.HasCell(id) {
			seen[s.Table.TypeID(id)] = true
		}
	}
	return len(seen)
}

// ArrayIDs returns a freshly allocated copy of node_id for every vertex, in
// vertex-index order, for an external observer/renderer.
func (s *Simulation) ArrayIDs() []uint32 {
	out := make([]uint32, s.Space.VertexCount())
	for v := range out {
		out[v] = s.Space.NodeID(v)
	}
	return out
}

// ArrayTypes returns a freshly allocated copy of node_type for every
// vertex, in vertex-index order.
func (s *Simulation) ArrayTypes() []uint32 {
	out := make([]uint32, s.Space.VertexCount())
	for v := range out {
		out[v] = s.Space.NodeType(v)
	}
	return out
}

// StepCount reports the number of completed model steps.
func (s *Simulation) StepCount() uint64 { return s.stepCount }
