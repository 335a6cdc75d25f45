package navigation

import "github.com/beka-birhanu/micromouse-api/maze"

// ConfirmedPath searches for a shortest path from start to any goal cell
// using only edges confirmed Open on the near side — the reliability bar
// for a speed run, where venturing onto an unknown edge could mean a
// crash. Returns the cell sequence including start, or nil when no fully
// confirmed route exists yet.
func ConfirmedPath(g *maze.Grid, start maze.Position) []maze.Position {
	if !maze.InBounds(start.X, start.Y) {
		return nil
	}
	if maze.InGoal(start) {
		return []maze.Position{start}
	}

	prev := make(map[maze.Position]maze.Position)
	seen := map[maze.Position]bool{start: true}
	queue := []maze.Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, step := range g.Neighbors(cur.X, cur.Y, false) {
			if seen[step.To] {
				continue
			}
			seen[step.To] = true
			prev[step.To] = cur
			if maze.InGoal(step.To) {
				return reconstruct(prev, start, step.To)
			}
			queue = append(queue, step.To)
		}
	}

	return nil
}

// reconstruct walks the parent links from goal back to start and reverses
// the result.
func reconstruct(prev map[maze.Position]maze.Position, start, goal maze.Position) []maze.Position {
	path := []maze.Position{goal}
	for cur := goal; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
