package celltable

// Option configures NewCellState beyond the required names/desiredVolumes/counts
// triple.
type Option func(*buildConfig)

type buildConfig struct {
	desiredPerimeters []int64
	positions         [][]float64
	extra             map[string][]interface{}
}

// WithDesiredPerimeters supplies one desired perimeter per group, with the
// same broadcast rule as desiredVolumes (length 1 or len(counts)).
func WithDesiredPerimeters(values []int64) Option {
	return func(cfg *buildConfig) { cfg.desiredPerimeters = values }
}

// WithPositions supplies one centroid per actual cell (length must equal
// the sum of counts, not the group count), used by the seed-and-grow
// placement routine.
func WithPositions(positions [][]float64) Option {
	return func(cfg *buildConfig) { cfg.positions = positions }
}

// WithExtraColumn attaches an opaque, caller-owned column. values must have
// one entry per actual cell (sum of counts).
func WithExtraColumn(name string, values []interface{}) Option {
	return func(cfg *buildConfig) {
		if cfg.extra == nil {
			cfg.extra = make(map[string][]interface{})
		}
		cfg.extra[name] = values
	}
}

// NewCellState builds a CellTable with one row per cell plus the medium
// row. names and desiredVolumes describe per-group properties and may each
// broadcast a single value across all groups; counts gives the number of
// actual cells instantiated from each group, in group order. Cells within a
// group sharing the same name receive the same type_id, assigned in
// first-occurrence order starting at 1 (0 is reserved for medium).
func NewCellState(names []string, desiredVolumes []int64, counts []int, opts ...Option) (*CellTable, error) {
	groups := len(counts)

	names, err := broadcastStrings(names, groups)
	if err != nil {
		return nil, err
	}
	desiredVolumes, err = broadcastInts(desiredVolumes, groups)
	if err != nil {
		return nil, err
	}

	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	desiredPerimeters, err := broadcastInts(cfg.desiredPerimeters, groups)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if cfg.positions != nil && len(cfg.positions) != total {
		return nil, ErrColumnLengthMismatch
	}
	for colName, values := range cfg.extra {
		if len(values) != total {
			return nil, ErrColumnLengthMismatch
		}
		_ = colName
	}

	table := &CellTable{
		names:             make([]string, 1, total+1),
		typeIDs:           make([]uint32, 1, total+1),
		volumes:           make([]int64, 1, total+1),
		desiredVolumes:    make([]int64, 1, total+1),
		perimeters:        make([]int64, 1, total+1),
		desiredPerimeters: make([]int64, 1, total+1),
		positions:         make([][]float64, 1, total+1),
		extra:             make([]map[string]interface{}, 1, total+1),
	}
	table.names[0] = "medium"
	table.desiredVolumes[0] = MediumDesiredVolume
	table.desiredPerimeters[0] = MediumDesiredVolume

	typeOf := make(map[string]uint32)
	nextType := uint32(1)
	cellIdx := 0
	for g := 0; g < groups; g++ {
		typeID, ok := typeOf[names[g]]
		if !ok {
			typeID = nextType
			typeOf[names[g]] = typeID
			nextType++
		}
		for i := 0; i < counts[g]; i++ {
			rec := Record{
				Name:             names[g],
				TypeID:           typeID,
				DesiredVolume:    desiredVolumes[g],
				DesiredPerimeter: desiredPerimeters[g],
			}
			if cfg.positions != nil {
				rec.Position = cfg.positions[cellIdx]
			}
			if len(cfg.extra) > 0 {
				rec.Extra = make(map[string]interface{}, len(cfg.extra))
				for colName, values := range cfg.extra {
					rec.Extra[colName] = values[cellIdx]
				}
			}
			table.appendRow(rec)
			cellIdx++
		}
	}

	return table, nil
}

func broadcastStrings(values []string, n int) ([]string, error) {
	switch len(values) {
	case 1:
		out := make([]string, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case n:
		return values, nil
	default:
		return nil, ErrNameCountMismatch
	}
}

func broadcastInts(values []int64, n int) ([]int64, error) {
	switch len(values) {
	case 0:
		return make([]int64, n), nil
	case 1:
		out := make([]int64, n)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case n:
		return values, nil
	default:
		return nil, ErrNameCountMismatch
	}
}

// appendRow is the single mutation point that grows every column in lockstep.
func (t *CellTable) appendRow(rec Record) uint32 {
	id := uint32(len(t.names))
	t.names = append(t.names, rec.Name)
	t.typeIDs = append(t.typeIDs, rec.TypeID)
	t.volumes = append(t.volumes, 0)
	t.desiredVolumes = append(t.desiredVolumes, rec.DesiredVolume)
	t.perimeters = append(t.perimeters, 0)
	t.desiredPerimeters = append(t.desiredPerimeters, rec.DesiredPerimeter)
	t.positions = append(t.positions, rec.Position)
	t.extra = append(t.extra, rec.Extra)
	return id
}

// AddCell appends a new cell row and returns its assigned id.
// Complexity: O(1) amortized.
func (t *CellTable) AddCell(rec Record) uint32 {
	return t.appendRow(rec)
}

// RemoveCell deletes the row for id, which must be nonzero and currently
// have volume 0. Rows keep their
// original ids forever; removing a middle row leaves a gap rather than
// renumbering, so ids remain stable references for History/Replay.
func (t *CellTable) RemoveCell(id uint32) error {
	if id == MediumID {
		return ErrRemoveMedium
	}
	if int(id) >= len(t.names) {
		return ErrCellNotFound
	}
	if t.volumes[id] != 0 {
		return ErrRemoveNonEmpty
	}
	t.names[id] = ""
	t.typeIDs[id] = 0
	t.desiredVolumes[id] = 0
	t.desiredPerimeters[id] = 0
	t.positions[id] = nil
	t.extra[id] = nil
	return nil
}

// CellCount returns the number of rows excluding the medium row, including
// any removed (gap) rows still occupying an id slot.
// Complexity: O(1).
func (t *CellTable) CellCount() int {
	return len(t.names) - 1
}

// HasCell reports whether id names a live (non-removed) row.
func (t *CellTable) HasCell(id uint32) bool {
	return int(id) < len(t.names) && (id == MediumID || t.names[id] != "")
}

// IterateRows invokes fn for every row, including medium, in id order.
// Complexity: O(K).
func (t *CellTable) IterateRows(fn func(Row)) {
	for id := range t.names {
		fn(t.rowAt(uint32(id)))
	}
}

func (t *CellTable) rowAt(id uint32) Row {
	return Row{
		ID:               id,
		Name:             t.names[id],
		TypeID:           t.typeIDs[id],
		Volume:           t.volumes[id],
		DesiredVolume:    t.desiredVolumes[id],
		Perimeter:        t.perimeters[id],
		DesiredPerimeter: t.desiredPerimeters[id],
		Position:         t.positions[id],
		Extra:            t.extra[id],
	}
}
