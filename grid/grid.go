// Package grid provides the immutable maze representation consumed by the
// directional search. Cells outside the grid read as walls.
package grid

// New constructs a Grid from a non-empty, rectangular wall matrix
// (walls[y][x] == true means wall) and the start and end cells.
// It deep-copies the input to ensure immutability.
//
// Returns (all matching ErrMalformedInput):
//   - ErrEmptyGrid if walls has no rows or no columns,
//   - ErrNonRectangular if any row length differs,
//   - ErrOutOfBounds if start or end lies outside the grid,
//   - ErrMarkerOnWall if start or end is a wall.
//
// Complexity: O(W×H) time and memory.
func New(walls [][]bool, start, end Cell) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, malformed(ErrEmptyGrid, "")
	}
	h, w := len(walls), len(walls[0])
	for y, row := range walls {
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has length %d, want %d", y, len(row), w)
		}
	}
	flat := make([]bool, 0, w*h)
	for _, row := range walls {
		flat = append(flat, row...)
	}

	return build(w, h, flat, start, end)
}

// build validates markers and wraps an already-owned row-major wall slice.
func build(w, h int, flat []bool, start, end Cell) (*Grid, error) {
	g := &Grid{Width: w, Height: h, walls: flat, start: start, end: end}
	for _, m := range [...]struct {
		name string
		c    Cell
	}{{"start", start}, {"end", end}} {
		if !g.InBounds(m.c) {
			return nil, malformed(ErrOutOfBounds, "%s %s in %dx%d grid", m.name, m.c, w, h)
		}
		if g.walls[g.Index(m.c)] {
			return nil, malformed(ErrMarkerOnWall, "%s %s", m.name, m.c)
		}
	}

	return g, nil
}

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the end cell.
func (g *Grid) End() Cell { return g.end }

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int { return g.Width * g.Height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsWall reports whether c is a wall. Out-of-bounds cells are walls.
// Complexity: O(1).
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.walls[g.Index(c)]
}

// Passable reports whether c is an in-bounds open cell.
func (g *Grid) Passable(c Cell) bool {
	return !g.IsWall(c)
}

// Index maps c to its row-major index: y*Width + x.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// WithWalls returns a copy of g with the given cells turned into walls.
// g itself is left untouched. Walling the start or end cell, or a cell
// out of bounds, is rejected.
func (g *Grid) WithWalls(cells ...Cell) (*Grid, error) {
	flat := make([]bool, len(g.walls))
	copy(flat, g.walls)
	for _, c := range cells {
		if !g.InBounds(c) {
			return nil, malformed(ErrOutOfBounds, "wall %s in %dx%d grid", c, g.Width, g.Height)
		}
		flat[g.Index(c)] = true
	}

	return build(g.Width, g.Height, flat, g.start, g.end)
}

// Connected reports whether b can be reached from a through open cells
// with plain 4-neighbor moves, ignoring facing and turn rules.
// A false result proves no directional route exists either.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and the queue.
func (g *Grid) Connected(a, b Cell) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	seen := make([]bool, g.Size())
	target := g.Index(b)
	queue := []int{g.Index(a)}
	seen[queue[0]] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == target {
			return true
		}
		uc := g.CellAt(u)
		for _, d := range AllDirections() {
			vc := uc.Add(d)
			if g.IsWall(vc) {
				continue
			}
			v := g.Index(vc)
			if seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return false
}
