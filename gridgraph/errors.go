package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadValue indicates a matrix field that is not an integer.
	ErrBadValue = errors.New("gridgraph: cell value is not an integer")
	// ErrUnknownMoves indicates an unrecognized move-set name.
	ErrUnknownMoves = errors.New("gridgraph: unknown move set")
)
