/*
Package navigation computes shortest-path guidance over the robot's
partial maze knowledge: a multi-source distance field seeded at the goal
region, a greedy descent policy choosing the next cell, and a
confirmed-edges-only path search used to validate speed runs.
*/
package navigation

import "github.com/beka-birhanu/micromouse-api/maze"

// Unreachable is the distance assigned to cells with no path to the goal.
const Unreachable = 1<<30 - 1

// DistanceField holds per-cell breadth-first distances to the goal region.
type DistanceField struct {
	dist [maze.Size][maze.Size]int
}

// At returns the distance from (x, y) to the nearest goal cell.
// Out-of-bounds coordinates are Unreachable.
func (f *DistanceField) At(x, y int) int {
	if !maze.InBounds(x, y) {
		return Unreachable
	}
	return f.dist[x][y]
}

// DistanceToGoal runs a multi-source breadth-first search from every goal
// cell over g, treating Unknown edges as open. The field must be
// recomputed whenever the maze knowledge changes; the grid is small enough
// that a full pass per turn is cheap.
func DistanceToGoal(g *maze.Grid) *DistanceField {
	f := &DistanceField{}
	for x := 0; x < maze.Size; x++ {
		for y := 0; y < maze.Size; y++ {
			f.dist[x][y] = Unreachable
		}
	}

	queue := make([]maze.Position, 0, maze.Size*maze.Size)
	for _, goal := range maze.GoalCells() {
		f.dist[goal.X][goal.Y] = 0
		queue = append(queue, goal)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		next := f.dist[cur.X][cur.Y] + 1
		for _, step := range g.Neighbors(cur.X, cur.Y, true) {
			if next < f.dist[step.To.X][step.To.Y] {
				f.dist[step.To.X][step.To.Y] = next
				queue = append(queue, step.To)
			}
		}
	}

	return f
}
