package navigation

import "github.com/beka-birhanu/micromouse-api/maze"

// NextStep picks the move out of pos that minimizes the distance field,
// among neighbors not separated by a confirmed wall. Ties break by heading
// preference: straight, then left, then right, then back — a fixed
// convention so identical knowledge always yields identical decisions.
//
// The boolean result is false only when every edge of pos is a confirmed
// wall, which cannot happen on a well-formed maze; callers fall back to an
// in-place maneuver.
func NextStep(g *maze.Grid, f *DistanceField, pos maze.Position, heading maze.Direction) (maze.Step, bool) {
	var best maze.Step
	bestDist, bestPref := -1, 0

	for _, step := range g.Neighbors(pos.X, pos.Y, true) {
		d := f.At(step.To.X, step.To.Y)
		pref := headingPreference(heading, step.Dir)
		if bestDist < 0 || d < bestDist || (d == bestDist && pref < bestPref) {
			best, bestDist, bestPref = step, d, pref
		}
	}

	return best, bestDist >= 0
}

// headingPreference ranks a candidate direction against the current
// heading: 0 straight, 1 left, 2 right, 3 back.
func headingPreference(heading, dir maze.Direction) int {
	switch dir {
	case heading:
		return 0
	case heading.Left():
		return 1
	case heading.Right():
		return 2
	default:
		return 3
	}
}
