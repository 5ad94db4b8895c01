// Package grid defines core types and sentinel errors for maze grids.
package grid

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformedInput is the root error for any rejected grid input.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a character other than '#', '.', 'S' or 'E'.
	ErrUnknownSymbol = errors.New("grid: unknown symbol")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("grid: start marker missing")
	// ErrDuplicateStart indicates more than one 'S' marker.
	ErrDuplicateStart = errors.New("grid: start marker duplicated")
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = errors.New("grid: end marker missing")
	// ErrDuplicateEnd indicates more than one 'E' marker.
	ErrDuplicateEnd = errors.New("grid: end marker duplicated")
	// ErrMarkerOnWall indicates start or end sits on a wall cell.
	ErrMarkerOnWall = errors.New("grid: start/end must be open")
	// ErrOutOfBounds indicates a cell outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// malformed joins kind with ErrMalformedInput so callers can match either.
func malformed(kind error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrMalformedInput, kind)
	}

	return fmt.Errorf("%w: %w: %s", ErrMalformedInput, kind, fmt.Sprintf(format, args...))
}

// Symbols of the text format.
const (
	SymbolWall      = '#'
	SymbolOpen      = '.'
	SymbolStart     = 'S'
	SymbolEnd       = 'E'
	SymbolHighlight = 'O'
)

// Cell is a 0-indexed grid coordinate. X grows to the right, Y grows down.
type Cell struct {
	X, Y int
}

// Add returns the neighbor of c one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()

	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats c as "x,y".
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Grid is an immutable wall map with a start and an end cell.
// Width and Height define dimensions; walls is row-major (y*Width + x).
type Grid struct {
	Width, Height int
	walls         []bool
	start, end    Cell
}
