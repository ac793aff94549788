package penalty

import "github.com/vellum-sim/cellpotts"

// Adhesion is the contact-energy penalty. J is a symmetric matrix of
// contact energies indexed by type id (0 = medium); J[a][b] is the energy
// charged per boundary edge between a type-a vertex and a type-b vertex of
// a different cell.
type Adhesion struct {
	j [][]int64
}

// NewAdhesion validates that J is square and symmetric before accepting it,
// so energy bookkeeping never depends on copy direction.
func NewAdhesion(j [][]int64) (*Adhesion, error) {
	n := len(j)
	for i, row := range j {
		if len(row) != n {
			return nil, errConfig("Adhesion", "J must be square")
		}
		for k := i + 1; k < n; k++ {
			if row[k] != j[k][i] {
				return nil, errConfig("Adhesion", "J must be symmetric")
			}
		}
	}
	return &Adhesion{j: j}, nil
}

func (p *Adhesion) Name() string { return "Adhesion" }

// Validate reports whether J covers every declared type id, so an
// out-of-range type id is caught eagerly instead of indexing p.j out of
// range from inside DeltaH.
func (p *Adhesion) Validate(numTypes int) error {
	if len(p.j) < numTypes {
		return errConfig("Adhesion", "J must have a row/column for every declared type id")
	}
	return nil
}

// DeltaH sums, over the target vertex's neighbors, the contact energy the
// candidate id would introduce minus the contact energy it would remove.
// Complexity: O(degree(target)).
func (p *Adhesion) DeltaH(ctx *cellpotts.Context) int64 {
	step := ctx.Step
	var delta int64
	for _, u := range step.NeighborsTarget {
		neighborID := ctx.Space.NodeID(int(u))
		neighborType := ctx.Space.NodeType(int(u))
		if neighborID != step.SourceID {
			delta += p.j[step.SourceType][neighborType]
		}
		if neighborID != step.TargetID {
			delta -= p.j[step.TargetType][neighborType]
		}
	}
	return delta
}

func (p *Adhesion) OnCommit(ctx *cellpotts.Context) {}
func (p *Adhesion) OnTick(ctx *cellpotts.Context)   {}
