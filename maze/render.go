package maze

import "strings"

// Edge glyphs: walls are solid, confirmed-open edges are blank, unknown
// edges are dotted.
const (
	vWall, vOpen, vUnknown = "|", " ", ":"
	hWall, hOpen, hUnknown = "---", "   ", "..."
)

// String renders the current wall knowledge as ASCII, top row first.
// Goal cells are marked G and visited cells are marked *.
func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat(hWall+"+", Size) + "\n")

	for y := Size - 1; y >= 0; y-- {
		// Cell row with vertical edges
		b.WriteString(vGlyph(g.Cells[0][y].Edges[West]))
		for x := 0; x < Size; x++ {
			cell := g.Cells[x][y]
			switch {
			case InGoal(Position{X: x, Y: y}):
				b.WriteString(" G ")
			case cell.Visited:
				b.WriteString(" * ")
			default:
				b.WriteString("   ")
			}
			b.WriteString(vGlyph(cell.Edges[East]))
		}
		b.WriteString("\n")

		// Southern edge row
		b.WriteString("+")
		for x := 0; x < Size; x++ {
			b.WriteString(hGlyph(g.Cells[x][y].Edges[South]) + "+")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func vGlyph(e EdgeState) string {
	switch e {
	case Wall:
		return vWall
	case Open:
		return vOpen
	default:
		return vUnknown
	}
}

func hGlyph(e EdgeState) string {
	switch e {
	case Wall:
		return hWall
	case Open:
		return hOpen
	default:
		return hUnknown
	}
}
