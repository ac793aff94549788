package celltable

// Builtin column names accepted by Get/Set.
const (
	ColumnName             = "name"
	ColumnTypeID           = "type_id"
	ColumnVolume           = "volume"
	ColumnDesiredVolume    = "desired_volume"
	ColumnPerimeter        = "perimeter"
	ColumnDesiredPerimeter = "desired_perimeter"
	ColumnPosition         = "position"
)

// Volume, Perimeter, TypeID, DesiredVolume, DesiredPerimeter, Position are
// the hot-path typed accessors MHEngine and PenaltyKit use; Get/Set below
// exist for the generic, column-name-driven access
// and for opaque extension columns.

// NumTypes returns one past the highest type id declared by any row,
// including medium's type id 0 — the length every per-type penalty
// parameter slice (λ, an adhesion row) must reach to be indexed safely.
func (t *CellTable) NumTypes() int {
	max := uint32(0)
	for id := range t.typeIDs {
		if t.typeIDs[id] > max {
			max = t.typeIDs[id]
		}
	}
	return int(max) + 1
}

func (t *CellTable) Volume(id uint32) int64           { return t.volumes[id] }
func (t *CellTable) Perimeter(id uint32) int64        { return t.perimeters[id] }
func (t *CellTable) TypeID(id uint32) uint32          { return t.typeIDs[id] }
func (t *CellTable) DesiredVolume(id uint32) int64    { return t.desiredVolumes[id] }
func (t *CellTable) DesiredPerimeter(id uint32) int64 { return t.desiredPerimeters[id] }
func (t *CellTable) Position(id uint32) []float64     { return t.positions[id] }
func (t *CellTable) Name(id uint32) string            { return t.names[id] }

// AddVolume adds delta to cell id's volume column. Saturates at the int64
// range rather than overflowing, since an absurd caller-supplied delta is a
// programming error that must saturate, not crash.
func (t *CellTable) AddVolume(id uint32, delta int64) {
	t.volumes[id] = saturatingAdd(t.volumes[id], delta)
}

// AddPerimeter adds delta to cell id's perimeter column, saturating.
func (t *CellTable) AddPerimeter(id uint32, delta int64) {
	t.perimeters[id] = saturatingAdd(t.perimeters[id], delta)
}

// SetPosition overwrites the centroid column for id.
func (t *CellTable) SetPosition(id uint32, pos []float64) {
	t.positions[id] = pos
}

// SetVolume overwrites the volume column for id, for callers doing a full
// recount rather than an incremental ±1 update.
func (t *CellTable) SetVolume(id uint32, v int64) {
	t.volumes[id] = v
}

// SetPerimeter overwrites the perimeter column for id, for callers doing a
// full recount rather than an incremental update, e.g. after any non-MH
// mutation of the lattice.
func (t *CellTable) SetPerimeter(id uint32, p int64) {
	t.perimeters[id] = p
}

func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return maxInt64
	}
	if b < 0 && sum > a {
		return minInt64
	}
	return sum
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)

// Get performs a generic, column-name-keyed read, checking builtin columns
// first and falling back to the row's opaque extension map. Complexity: O(1).
func (t *CellTable) Get(id uint32, column string) (interface{}, error) {
	if int(id) >= len(t.names) {
		return nil, ErrCellNotFound
	}
	switch column {
	case ColumnName:
		return t.names[id], nil
	case ColumnTypeID:
		return t.typeIDs[id], nil
	case ColumnVolume:
		return t.volumes[id], nil
	case ColumnDesiredVolume:
		return t.desiredVolumes[id], nil
	case ColumnPerimeter:
		return t.perimeters[id], nil
	case ColumnDesiredPerimeter:
		return t.desiredPerimeters[id], nil
	case ColumnPosition:
		return t.positions[id], nil
	default:
		if t.extra[id] == nil {
			return nil, ErrColumnNotFound
		}
		v, ok := t.extra[id][column]
		if !ok {
			return nil, ErrColumnNotFound
		}
		return v, nil
	}
}

// Set performs a generic, column-name-keyed write. Builtin numeric columns
// require the matching Go type (int64 for volume/perimeter/desired_*,
// uint32 for type_id, string for name, []float64 for position); mismatches
// return ErrColumnNotFound rather than silently coercing. Unknown column
// names are written into the row's opaque extension map.
func (t *CellTable) Set(id uint32, column string, value interface{}) error {
	if int(id) >= len(t.names) {
		return ErrCellNotFound
	}
	switch column {
	case ColumnName:
		s, ok := value.(string)
		if !ok {
			return ErrColumnNotFound
		}
		t.names[id] = s
	case ColumnTypeID:
		v, ok := value.(uint32)
		if !ok {
			return ErrColumnNotFound
		}
		t.typeIDs[id] = v
	case ColumnVolume:
		v, ok := value.(int64)
		if !ok {
			return ErrColumnNotFound
		}
		t.volumes[id] = v
	case ColumnDesiredVolume:
		v, ok := value.(int64)
		if !ok {
			return ErrColumnNotFound
		}
		t.desiredVolumes[id] = v
	case ColumnPerimeter:
		v, ok := value.(int64)
		if !ok {
			return ErrColumnNotFound
		}
		t.perimeters[id] = v
	case ColumnDesiredPerimeter:
		v, ok := value.(int64)
		if !ok {
			return ErrColumnNotFound
		}
		t.desiredPerimeters[id] = v
	case ColumnPosition:
		v, ok := value.([]float64)
		if !ok {
			return ErrColumnNotFound
		}
		t.positions[id] = v
	default:
		if t.extra[id] == nil {
			t.extra[id] = make(map[string]interface{})
		}
		t.extra[id][column] = value
	}
	return nil
}
