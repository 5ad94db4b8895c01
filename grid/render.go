package grid

import "strings"

// Render draws g in the text format, one line per row, each line ending
// in '\n'. Open cells for which highlight returns true are drawn as 'O';
// start and end always keep their markers. highlight may be nil.
//
// Render only reads g; it is safe to call at any time.
func (g *Grid) Render(highlight func(Cell) bool) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case c == g.start:
				sb.WriteByte(SymbolStart)
			case c == g.end:
				sb.WriteByte(SymbolEnd)
			case g.walls[g.Index(c)]:
				sb.WriteByte(SymbolWall)
			case highlight != nil && highlight(c):
				sb.WriteByte(SymbolHighlight)
			default:
				sb.WriteByte(SymbolOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
