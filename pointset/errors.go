package pointset

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a matrix shape is invalid or rows are ragged.
	ErrBadShape = errors.New("pointset: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("pointset: dimension mismatch")

	// ErrInvalidSetID indicates a set ID numbering that violates the dataset invariants.
	ErrInvalidSetID = errors.New("pointset: invalid set id")

	// ErrEmpty is returned when an operation requires at least one point.
	ErrEmpty = errors.New("pointset: empty point set")
)

// DimensionError describes a dimension mismatch between two operands.
//
// It matches ErrDimensionMismatch via errors.Is.
type DimensionError struct {
	What     string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("pointset: dimension mismatch for %s: expected %d, got %d", e.What, e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// CheckDimension returns a *DimensionError when actual != expected.
func CheckDimension(what string, expected, actual int) error {
	if expected != actual {
		return &DimensionError{What: what, Expected: expected, Actual: actual}
	}
	return nil
}
