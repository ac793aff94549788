// Package history implements the append-only log of accepted MH copies and
// the time-indexed replay function that reconstructs the lattice at any
// past step. Five parallel slices grow in lockstep rather than a slice of
// entry structs, since every entry shares the same shape by construction.
package history

import "github.com/vellum-sim/cellpotts/lattice"

// Entry is one committed copy: vertex had its node_id/node_type replaced at
// the given step. Snapshot is an optional, caller-defined per-penalty
// payload (e.g. a serialized auxiliary-state blob) recorded alongside the
// structural change.
type Entry struct {
	Step     uint64
	Vertex   int32
	NewID    uint32
	NewType  uint32
	Snapshot []byte
}

// Log is the append-only history of accepted copies for one simulation. It
// retains a clone of the lattice as it stood when recording last started,
// so LatticeAt can replay forward from a known-good baseline.
type Log struct {
	steps    []uint64
	vertices []int32
	newIDs   []uint32
	newTypes []uint32
	snapshot [][]byte

	recording   bool
	everStepped bool

	baseline *lattice.CellSpace
	scratch  *lattice.CellSpace
}

// NewLog creates a Log that will replay from a clone of initial whenever
// recording is turned on. Complexity: O(V) for the initial clone.
func NewLog(initial *lattice.CellSpace) *Log {
	return &Log{baseline: initial.Clone()}
}

// SetRecording toggles whether committed copies are appended to the log.
// Turning recording on (re-)captures the current lattice as the replay
// baseline, so LatticeAt's log-order replay starts from a consistent state
// even if recording was previously off for a while.
func (l *Log) SetRecording(on bool, current *lattice.CellSpace) {
	if on && !l.recording {
		l.baseline = current.Clone()
		l.steps = l.steps[:0]
		l.vertices = l.vertices[:0]
		l.newIDs = l.newIDs[:0]
		l.newTypes = l.newTypes[:0]
		l.snapshot = l.snapshot[:0]
	}
	l.recording = on
}

// Recording reports whether the log is currently accepting appends.
// Returns ErrNoStepsYet if no mh_step attempt has ever been made.
func (l *Log) Recording() (bool, error) {
	if !l.everStepped {
		return false, ErrNoStepsYet
	}
	return l.recording, nil
}

// MarkStepped records that at least one mh_step attempt has occurred,
// independent of whether it was accepted or whether recording is on.
// MHEngine calls this on every attempt.
func (l *Log) MarkStepped() { l.everStepped = true }

// Append records one committed copy. Panics are never raised; a step value
// lower than the previous append is silently clamped up to preserve the
// non-decreasing invariant, since that can only happen
// from caller misuse (a non-monotonic external step counter), not from
// MHEngine itself.
func (l *Log) Append(entry Entry) {
	if !l.recording {
		return
	}
	if n := len(l.steps); n > 0 && entry.Step < l.steps[n-1] {
		entry.Step = l.steps[n-1]
	}
	l.steps = append(l.steps, entry.Step)
	l.vertices = append(l.vertices, entry.Vertex)
	l.newIDs = append(l.newIDs, entry.NewID)
	l.newTypes = append(l.newTypes, entry.NewType)
	l.snapshot = append(l.snapshot, entry.Snapshot)
}

// Len reports the number of recorded entries.
func (l *Log) Len() int { return len(l.steps) }

// LastStep returns the step of the most recent entry, or 0 if empty.
func (l *Log) LastStep() uint64 {
	if len(l.steps) == 0 {
		return 0
	}
	return l.steps[len(l.steps)-1]
}
