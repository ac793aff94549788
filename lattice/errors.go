package lattice

import "errors"

// Sentinel errors for CellSpace construction and access.
var (
	// ErrEmptyShape indicates a shape with zero axes was supplied.
	ErrEmptyShape = errors.New("lattice: shape must have at least one axis")
	// ErrNonPositiveExtent indicates an axis extent was <= 0.
	ErrNonPositiveExtent = errors.New("lattice: every axis extent must be positive")
	// ErrTooManyDimensions indicates a shape exceeded the supported dimension cap.
	ErrTooManyDimensions = errors.New("lattice: shape exceeds the maximum of 8 dimensions")
	// ErrAxisOutOfRange indicates an axis index passed to IsPeriodic is out of bounds.
	ErrAxisOutOfRange = errors.New("lattice: axis index out of range")
	// ErrPeriodicityLength indicates a per-axis periodicity slice disagreeing with shape length.
	ErrPeriodicityLength = errors.New("lattice: periodicity slice length must match shape length")
	// ErrVertexOutOfRange indicates a vertex index outside [0, vertex_count).
	ErrVertexOutOfRange = errors.New("lattice: vertex index out of range")
)
