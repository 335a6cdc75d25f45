package maze

// EdgeState is the robot's knowledge about one side of a cell.
type EdgeState uint8

// Edge knowledge states. The zero value is Unknown so a fresh grid needs
// no initialization beyond its boundary.
const (
	Unknown EdgeState = iota
	Open
	Wall
)

// String returns a short name for the edge state.
func (e EdgeState) String() string {
	switch e {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Cell holds the wall knowledge for a single grid cell, one edge state per
// cardinal direction, and whether the robot has stood in it.
type Cell struct {
	Edges   [4]EdgeState `json:"edges"`
	Visited bool         `json:"visited"`
}
