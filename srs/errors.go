package srs

import (
	"errors"
	"fmt"
)

// Contract violations. The engine panics with these; they never describe a
// normal gameplay outcome.
var (
	ErrCellCount       = errors.New("srs: cell count does not match grid size")
	ErrOrigin          = errors.New("srs: shape pattern needs exactly one origin marker")
	ErrInvalidRotation = errors.New("srs: rotation direction must be +1 or -1")
	ErrNotActive       = errors.New("srs: piece is not the active piece")
	ErrActiveExists    = errors.New("srs: playfield already has an active piece")
)

// OutOfBoundsError is raised when a Grid is indexed outside its bounds.
type OutOfBoundsError struct {
	Pos           Vec
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("srs: %v out of bounds for %dx%d grid", e.Pos, e.Width, e.Height)
}
