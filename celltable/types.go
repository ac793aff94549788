// Package celltable holds the column-oriented CellTable: one row per cell
// id (plus the reserved medium row 0), with builtin columns for volume,
// perimeter, desired targets, type, name, and centroid position, and
// opaque per-row extension columns carried verbatim for callers.
//
// Columns are stored as parallel slices rather than row structs so that
// MHEngine's per-attempt bookkeeping (bump a volume, nudge a perimeter)
// touches only the columns it needs.
package celltable

import "math"

// MediumDesiredVolume is the sentinel desired_volume (and desired_perimeter)
// of the medium row, standing for an unbounded target. The Volume and
// Perimeter penalties never evaluate medium's term; they skip id 0
// explicitly rather than relying on this value.
const MediumDesiredVolume = math.MaxInt64

// MediumID is the reserved cell id denoting background/medium.
const MediumID = 0

// Record describes one cell to add via AddCell.
type Record struct {
	Name             string
	TypeID           uint32
	DesiredVolume    int64
	DesiredPerimeter int64
	Position         []float64
	Extra            map[string]interface{}
}

// Row is a read-only snapshot of one CellTable row, returned by IterateRows.
type Row struct {
	ID               uint32
	Name             string
	TypeID           uint32
	Volume           int64
	DesiredVolume    int64
	Perimeter        int64
	DesiredPerimeter int64
	Position         []float64
	Extra            map[string]interface{}
}

// CellTable is the column-oriented per-cell state table. Index 0 is always
// the medium row; AddCell appends subsequent rows in id order 1..K.
type CellTable struct {
	names             []string
	typeIDs           []uint32
	volumes           []int64
	desiredVolumes    []int64
	perimeters        []int64
	desiredPerimeters []int64
	positions         [][]float64
	extra             []map[string]interface{}
}
