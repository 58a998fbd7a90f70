package climb

import "errors"

var (
	// ErrUnknownMode indicates a mode name or value outside ModeForward/ModeReverse.
	ErrUnknownMode = errors.New("climb: unknown traversal mode")
	// ErrNilHeightmap indicates a nil heightmap or a heightmap without a grid.
	ErrNilHeightmap = errors.New("climb: heightmap is nil")
)
