package cellpotts

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the four error kinds callers must be able
// to distinguish via errors.Is/errors.As.
var (
	errConfiguration    = errors.New("configuration error")
	errPlacement        = errors.New("placement error")
	errInvariant        = errors.New("invariant violation")
	errInvalidOperation = errors.New("invalid operation")
)

// ConfigurationError reports a problem discovered eagerly at construction
// time: a non-symmetric adhesion matrix, a parameter vector whose length
// disagrees with the declared type count, a chemotaxis field whose shape
// does not match the lattice, an empty or non-positive shape.
type ConfigurationError struct {
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cellpotts: configuration error in %s: %s", e.Component, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return errConfiguration }

// NewConfigurationError constructs a ConfigurationError for the given
// component and reason.
func NewConfigurationError(component, reason string) error {
	return &ConfigurationError{Component: component, Reason: reason}
}

// PlacementError reports that the seed-and-grow placement routine could not
// fit the requested cells: desired volumes summed beyond lattice capacity,
// or explicit positions fell outside the grid.
type PlacementError struct {
	Reason string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cellpotts: placement error: %s", e.Reason)
}

func (e *PlacementError) Unwrap() error { return errPlacement }

// NewPlacementError constructs a PlacementError.
func NewPlacementError(reason string) error {
	return &PlacementError{Reason: reason}
}

// InvariantViolation reports an internal consistency check failure: the
// total occupied volume no longer equals the vertex count, a vertex's
// node_type disagrees with its cell's declared type, a cached volume
// disagrees with a recount, or a cell's perimeter went negative. Cell
// connectivity is not part of these checks. This is never recovered;
// callers should treat it as fatal.
type InvariantViolation struct {
	CellID uint32
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("cellpotts: invariant violation on cell %d: %s", e.CellID, e.Reason)
}

func (e *InvariantViolation) Unwrap() error { return errInvariant }

// NewInvariantViolation constructs an InvariantViolation for cellID.
func NewInvariantViolation(cellID uint32, reason string) error {
	return &InvariantViolation{CellID: cellID, Reason: reason}
}

// InvalidOperation reports a caller error on an otherwise-valid simulation.
// The caller errors this module's own operations detect are not reported as
// InvalidOperation but through their packages' sentinels:
// celltable.ErrRemoveNonEmpty (RemoveCell on a nonempty cell),
// history.ErrNoStepsYet (recording queried before any step), and
// history.ErrNegativeTime (LatticeAt with a negative time).
type InvalidOperation struct {
	Reason string
}

func (e *InvalidOperation) Error() string {
	return fmt.Sprintf("cellpotts: invalid operation: %s", e.Reason)
}

func (e *InvalidOperation) Unwrap() error { return errInvalidOperation }

// NewInvalidOperation constructs an InvalidOperation.
func NewInvalidOperation(reason string) error {
	return &InvalidOperation{Reason: reason}
}

// IsConfigurationError, IsPlacementError, IsInvariantViolation, and
// IsInvalidOperation let callers branch on error kind without importing the
// concrete types.
func IsConfigurationError(err error) bool { return errors.Is(err, errConfiguration) }
func IsPlacementError(err error) bool     { return errors.Is(err, errPlacement) }
func IsInvariantViolation(err error) bool { return errors.Is(err, errInvariant) }
func IsInvalidOperation(err error) bool   { return errors.Is(err, errInvalidOperation) }
