package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent processing failures for a single file or manifest row.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a referenced input file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown manifest format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Trial Errors.

	// ErrMissingColumn indicates a required column is absent from a trial.
	ErrMissingColumn = errors.New("missing column")

	// ErrNonNumeric indicates a trial cell could not be parsed as a number.
	ErrNonNumeric = errors.New("non-numeric value")

	// ErrInterpolation indicates a column could not be resampled.
	ErrInterpolation = errors.New("interpolation failed")

	// ErrShortFile indicates a raw trial has fewer lines than its preamble.
	ErrShortFile = errors.New("file too short")

	// ErrFrameRange indicates a manifest frame range falls outside the trial body.
	ErrFrameRange = errors.New("frame range out of bounds")
)

// MissingColumnError names the column that was expected but absent.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// Unwrap lets errors.Is match ErrMissingColumn.
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
