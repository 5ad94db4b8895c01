// Package grid models a rectangular maze of walls and open cells with one
// distinguished start cell and one distinguished end cell.
//
// What:
//
//   - Grid is an immutable passability map built from text or from a [][]bool.
//   - Cell is an (x, y) coordinate, 0-indexed from the top-left corner.
//   - Direction is one of the four unit moves North, East, South, West.
//   - Render projects a Grid plus an optional highlight set back to text.
//
// Text format:
//
//	#  wall
//	.  open
//	S  start (exactly one, open)
//	E  end   (exactly one, open)
//
// Complexity:
//
//   - Parse / New:  O(W×H) time and memory.
//   - IsWall, Index, CellAt, InBounds: O(1).
//   - Connected: O(W×H) BFS over open cells.
//
// Errors:
//
//   - ErrMalformedInput is the root of every construction failure; each
//     specific error below also matches it via errors.Is.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol,
//     ErrMissingStart, ErrDuplicateStart, ErrMissingEnd, ErrDuplicateEnd,
//     ErrMarkerOnWall, ErrOutOfBounds.
package grid
