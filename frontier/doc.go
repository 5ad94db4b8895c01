// Package frontier provides the min-priority structure that drives
// expansion order in the directional search.
//
// Entries are ordered by cost ascending; equal costs come out in insertion
// order (first in, first out). The secondary key makes every run over the
// same input pop states in the same sequence.
//
// Complexity:
//
//   - Push:   O(log N)
//   - PopMin: O(log N)
//   - Len:    O(1)
//
// The heap itself is github.com/zyedidia/generic/heap; this package only
// adds the cost/sequence ordering.
package frontier
