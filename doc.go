// Package turnmaze finds the cheapest routes through a maze where the
// walker has a facing, stepping forward is cheap and turning is expensive.
//
// What is turnmaze?
//
//	A small, dependency-light library plus command that answers two questions
//	about a text maze of '#', '.', 'S' and 'E':
//		• What is the minimal cost from S to E?
//		• Which cells lie on at least one route achieving that cost?
//
// Cost model:
//
//   - A straight step costs 1.
//   - Turning 90° and stepping into the new facing costs 1001.
//   - Reversing in place is not a move; walls block.
//   - The walker starts on S facing East.
//
// Under the hood, the code is organized into these packages:
//
//	grid/         immutable maze: Cell, Direction, parser, renderer
//	frontier/     deterministic min-priority queue (cost, then insertion order)
//	turnpath/     oriented Dijkstra search and optimal-cell extraction
//	cmd/turnmaze  command-line harness
//
// Quick ASCII example:
//
//	S..        SOO
//	...   ->   ..O     cost 1004, 5 optimal cells
//	..E        ..E
//
//	go get github.com/katalvlaran/turnmaze
package turnmaze
