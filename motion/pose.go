package motion

import "github.com/beka-birhanu/micromouse-api/maze"

// Pose is the robot's tracked cell, heading and momentum. It is mutated
// only by committed planner output, never inferred from sensing.
type Pose struct {
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Heading  maze.Direction `json:"heading"`
	Momentum int            `json:"momentum"`
}

// Position returns the pose's cell coordinates.
func (p Pose) Position() maze.Position {
	return maze.Position{X: p.X, Y: p.Y}
}

// advance moves the pose one cell along dir.
func (p *Pose) advance(dir maze.Direction) {
	dx, dy := dir.Delta()
	p.X += dx
	p.Y += dy
}
