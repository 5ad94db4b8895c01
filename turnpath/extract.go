package turnpath

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/turnmaze/grid"
)

// OptimalCells returns every cell that lies on at least one route whose
// total cost equals MinCost. The set always contains start and end.
//
// Behavior:
//  1. Seed a stack with every end State tied at MinCost.
//  2. Pop a State, add its cell, push its unvisited predecessors.
//  3. Stop when the stack is empty; the start State has no predecessors.
//
// Each State is visited at most once, tracked in a flat []bool arena.
//
// Complexity: O(S + P), S = States, P = predecessor links.
func (r *Result) OptimalCells() mapset.Set[grid.Cell] {
	cells := mapset.New[grid.Cell]()
	seen := make([]bool, len(r.cost))
	stack := make([]int, 0, len(r.ends))
	for _, id := range r.ends {
		seen[id] = true
		stack = append(stack, id)
	}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells.Put(r.g.CellAt(u / grid.NumDirections))
		for _, p := range r.preds[u] {
			if seen[p] {
				continue
			}
			seen[p] = true
			stack = append(stack, p)
		}
	}

	return cells
}

// Route returns one optimal route as the sequence of cells from start to
// end. Where several predecessors tie, the first recorded one is taken, so
// the route is deterministic for a given grid and options.
func (r *Result) Route() []grid.Cell {
	if len(r.ends) == 0 {
		return nil
	}
	var rev []grid.Cell
	for u := r.ends[0]; ; u = r.preds[u][0] {
		rev = append(rev, r.g.CellAt(u/grid.NumDirections))
		if len(r.preds[u]) == 0 {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Render draws the grid with every optimal cell marked 'O'.
func (r *Result) Render() string {
	cells := r.OptimalCells()

	return r.g.Render(cells.Has)
}

// OptimalCells runs Search on g and returns the optimal cell set.
func OptimalCells(g *grid.Grid, opts ...Option) (mapset.Set[grid.Cell], error) {
	res, err := Search(g, opts...)
	if err != nil {
		return mapset.Set[grid.Cell]{}, err
	}

	return res.OptimalCells(), nil
}

// CountOptimalCells runs Search on g and returns how many cells lie on at
// least one minimal-cost route.
func CountOptimalCells(g *grid.Grid, opts ...Option) (int, error) {
	cells, err := OptimalCells(g, opts...)
	if err != nil {
		return 0, err
	}

	return cells.Size(), nil
}
