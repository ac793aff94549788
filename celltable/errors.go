package celltable

import "errors"

// Sentinel errors for CellTable operations.
var (
	// ErrCellNotFound indicates the requested cell id has no row.
	ErrCellNotFound = errors.New("celltable: cell id not found")
	// ErrCellExists indicates a cell id already present. No CellTable
	// operation returns it: AddCell always assigns a fresh id.
	ErrCellExists = errors.New("celltable: cell id already exists")
	// ErrColumnNotFound indicates a generic Get/Set referenced an unknown column.
	ErrColumnNotFound = errors.New("celltable: column not found")
	// ErrRemoveNonEmpty indicates remove_cell was attempted on a cell whose volume != 0.
	ErrRemoveNonEmpty = errors.New("celltable: cannot remove a cell with nonzero volume")
	// ErrRemoveMedium indicates an attempt to remove the reserved medium row (id 0).
	ErrRemoveMedium = errors.New("celltable: cannot remove the medium row")
	// ErrNameCountMismatch indicates a names/counts broadcast could not be resolved.
	ErrNameCountMismatch = errors.New("celltable: names length must be 1 or match counts length")
	// ErrColumnLengthMismatch indicates an extra column's length disagreed with the cell count.
	ErrColumnLengthMismatch = errors.New("celltable: extra column length must match cell count")
)
