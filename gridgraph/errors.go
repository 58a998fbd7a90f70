package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrElevationRange indicates a cell value outside [MinElevation, MaxElevation].
	ErrElevationRange = errors.New("gridgraph: elevation out of range")
	// ErrInvalidCell indicates an input character that is neither a-z nor a marker.
	ErrInvalidCell = errors.New("gridgraph: invalid cell character")
	// ErrMissingStart indicates the input has no 'S' marker.
	ErrMissingStart = errors.New("gridgraph: start marker 'S' not found")
	// ErrMissingEnd indicates the input has no 'E' marker.
	ErrMissingEnd = errors.New("gridgraph: end marker 'E' not found")
	// ErrDuplicateMarker indicates a marker appears more than once.
	ErrDuplicateMarker = errors.New("gridgraph: marker appears more than once")
)
