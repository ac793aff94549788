package history

import "github.com/vellum-sim/cellpotts/lattice"

// LatticeAt reconstructs the lattice as of time t: starting from the
// preserved baseline, it applies every logged entry with step <= t in log
// order. The returned lattice is a shared scratch instance owned by the
// Log and mutated on every call; callers that need to retain a snapshot
// must Clone() it themselves. A t with its top bit set is read as a negative
// int64 and rejected with ErrNegativeTime.
// Complexity: O(entries with step <= t).
func (l *Log) LatticeAt(t uint64) (*lattice.CellSpace, error) {
	if int64(t) < 0 {
		return nil, ErrNegativeTime
	}
	if l.scratch == nil {
		l.scratch = l.baseline.Clone()
	} else {
		resetTo(l.scratch, l.baseline)
	}

	for i, step := range l.steps {
		if step > t {
			break
		}
		l.scratch.Set(int(l.vertices[i]), l.newIDs[i], l.newTypes[i])
	}

	return l.scratch, nil
}

// resetTo overwrites dst's attribute arrays in place from src without
// reallocating, since dst and src share identical topology by construction
// (dst was itself cloned from an earlier baseline of the same CellSpace).
func resetTo(dst, src *lattice.CellSpace) {
	for v := 0; v < src.VertexCount(); v++ {
		dst.Set(v, src.NodeID(v), src.NodeType(v))
	}
}
