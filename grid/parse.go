package grid

import (
	"io"
	"strings"
)

// Parse builds a Grid from the text format ('#', '.', 'S', 'E').
// Lines are separated by '\n'; a trailing '\r' on each line and trailing
// blank lines are ignored.
//
// Every error returned matches ErrMalformedInput.
//
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || lines[0] == "" {
		return nil, malformed(ErrEmptyGrid, "")
	}

	w := len([]rune(lines[0]))
	h := len(lines)
	flat := make([]bool, 0, w*h)
	var start, end Cell
	var starts, ends int

	for y, line := range lines {
		row := []rune(line)
		if len(row) != w {
			return nil, malformed(ErrNonRectangular, "row %d has length %d, want %d", y, len(row), w)
		}
		for x, r := range row {
			switch r {
			case SymbolWall:
				flat = append(flat, true)
			case SymbolOpen:
				flat = append(flat, false)
			case SymbolStart:
				start = Cell{X: x, Y: y}
				starts++
				flat = append(flat, false)
			case SymbolEnd:
				end = Cell{X: x, Y: y}
				ends++
				flat = append(flat, false)
			default:
				return nil, malformed(ErrUnknownSymbol, "%q at %d,%d", r, x, y)
			}
		}
	}

	switch {
	case starts == 0:
		return nil, malformed(ErrMissingStart, "")
	case starts > 1:
		return nil, malformed(ErrDuplicateStart, "found %d", starts)
	case ends == 0:
		return nil, malformed(ErrMissingEnd, "")
	case ends > 1:
		return nil, malformed(ErrDuplicateEnd, "found %d", ends)
	}

	return build(w, h, flat, start, end)
}

// ParseReader reads r fully and parses it with Parse.
// Read failures are returned as-is and do not match ErrMalformedInput.
func ParseReader(r io.Reader) (*Grid, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(string(b))
}
