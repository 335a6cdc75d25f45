/*
Package maze models the robot's incremental knowledge of a 16×16 maze.

Unlike a generated maze, every edge starts out Unknown and is filled in
from sensor observations one cell at a time. Edge knowledge obeys two
rules: observations are mirrored onto the adjacent cell's reciprocal edge,
and a confirmed Wall is permanent — a later "open" reading never overrides
it. The outer boundary is pre-seeded as walls.
*/
package maze

// Size is the side length of the grid in cells.
const Size = 16

// goalCells is the fixed 2×2 region at the numeric center of the grid.
var goalCells = [4]Position{{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 8, Y: 7}, {X: 8, Y: 8}}

// GoalCells returns the cells of the goal region.
func GoalCells() []Position {
	return goalCells[:]
}

// InGoal reports whether p lies inside the goal region.
func InGoal(p Position) bool {
	for _, g := range goalCells {
		if g == p {
			return true
		}
	}
	return false
}

// Step is one traversable move out of a cell, as reported by Neighbors.
type Step struct {
	To  Position
	Dir Direction
}

// Grid is the robot's wall knowledge for the whole maze.
type Grid struct {
	Cells [Size][Size]Cell `json:"cells"`
}

// New returns a grid with all interior edges Unknown and the four outer
// boundaries confirmed as walls.
func New() *Grid {
	g := &Grid{}
	for i := 0; i < Size; i++ {
		g.Cells[i][0].Edges[South] = Wall
		g.Cells[i][Size-1].Edges[North] = Wall
		g.Cells[0][i].Edges[West] = Wall
		g.Cells[Size-1][i].Edges[East] = Wall
	}
	return g
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// SetWall records a wall observation at (x, y) toward dir and mirrors it
// onto the neighboring cell. Walls are sticky: once either side of an edge
// has recorded Wall, a later "open" observation is discarded.
func (g *Grid) SetWall(x, y int, dir Direction, present bool) {
	if !InBounds(x, y) {
		return
	}

	state := Open
	if present {
		state = Wall
	}

	// A conflicting observation on either side forces the pair to Wall.
	if g.Cells[x][y].Edges[dir] == Wall {
		state = Wall
	}
	nx, ny := x+dx[dir], y+dy[dir]
	rdir := dir.Opposite()
	if InBounds(nx, ny) && g.Cells[nx][ny].Edges[rdir] == Wall {
		state = Wall
	}

	g.Cells[x][y].Edges[dir] = state
	if InBounds(nx, ny) {
		g.Cells[nx][ny].Edges[rdir] = state
	}
}

// EdgeAt returns the knowledge state of the edge leaving (x, y) toward
// dir. Out-of-bounds coordinates are always walled.
func (g *Grid) EdgeAt(x, y int, dir Direction) EdgeState {
	if !InBounds(x, y) {
		return Wall
	}
	return g.Cells[x][y].Edges[dir]
}

// Blocked reports whether the edge leaving (x, y) toward dir is a
// confirmed wall, checking both sides of the edge since either side's
// record may be the authoritative one.
func (g *Grid) Blocked(x, y int, dir Direction) bool {
	if g.EdgeAt(x, y, dir) == Wall {
		return true
	}
	nx, ny := x+dx[dir], y+dy[dir]
	if !InBounds(nx, ny) {
		return true
	}
	return g.Cells[nx][ny].Edges[dir.Opposite()] == Wall
}

// Neighbors returns the in-bounds moves out of (x, y) whose edge is not a
// confirmed wall. With unknownOpen set, Unknown edges are included — the
// exploration bias that favors venturing into unmapped territory.
func (g *Grid) Neighbors(x, y int, unknownOpen bool) []Step {
	if !InBounds(x, y) {
		return nil
	}
	steps := make([]Step, 0, 4)
	for d := North; d <= West; d++ {
		if g.Blocked(x, y, d) {
			continue
		}
		if !unknownOpen && g.EdgeAt(x, y, d) != Open {
			continue
		}
		steps = append(steps, Step{To: Position{X: x + dx[d], Y: y + dy[d]}, Dir: d})
	}
	return steps
}

// MarkVisited flags (x, y) as visited.
func (g *Grid) MarkVisited(x, y int) {
	if InBounds(x, y) {
		g.Cells[x][y].Visited = true
	}
}

// Visited reports whether the robot has stood in (x, y).
func (g *Grid) Visited(x, y int) bool {
	return InBounds(x, y) && g.Cells[x][y].Visited
}
