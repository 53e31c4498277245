package boardutil

import "errors"

// Sentinel errors for boardutil operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("boardutil: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("boardutil: all rows must have the same length")
)
