// Package turnpath finds minimal-cost routes through a grid.Grid when the
// walker has a facing and turning is expensive.
//
// Overview:
//
//   - The search vertex is a State: a cell plus the direction the walker
//     faces. Cost depends on facing, so plain cells are not enough.
//   - Stepping forward costs StepCost (default 1). Turning 90° and stepping
//     into the new facing costs TurnCost (default 1001). Reversing 180° is
//     never allowed, and walls and out-of-grid cells block movement.
//   - The walker starts on grid.Start facing InitialFacing (default East).
//   - Search runs a Dijkstra relaxation over States and keeps, for every
//     State, its best cost and the set of predecessors that achieve it.
//
// Two answers come out of one Search:
//
//   - Result.MinCost: the lowest cost to stand on grid.End in any facing.
//   - Result.OptimalCells: every cell lying on at least one route whose
//     cost equals MinCost. Found by walking all predecessor links back
//     from every tied end State, so ties at the end are never lost.
//
// Termination:
//
//   - By default the relaxation continues until the frontier is empty.
//   - WithEarlyExit stops once every popped cost exceeds MinCost. All end
//     States tied at MinCost, and all their predecessors, are settled by
//     then, so OptimalCells is identical in both modes.
//   - End States are absorbing: a route stops the first time it reaches
//     grid.End.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4 States, at most 3 transitions each.
//   - Space: O(S) for the flat cost and predecessor arenas.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         Search was given a nil grid.
//   - ErrOptionViolation: an Option was invalid (ErrBadStepCost,
//     ErrBadTurnCost, ErrBadFacing, or costs large enough to overflow).
//   - ErrUnreachable:     no legal route reaches grid.End. For puzzle inputs
//     this means the input broke its contract.
//
// Example:
//
//	g, _ := grid.Parse(maze)
//	res, err := turnpath.Search(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.MinCost(), res.OptimalCells().Size())
package turnpath
