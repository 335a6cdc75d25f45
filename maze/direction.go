package maze

// Direction is one of the four cardinal headings.
type Direction int

// Cardinal directions. North is +Y, East is +X, with (0,0) at the
// bottom-left of the grid.
const (
	North Direction = iota
	East
	South
	West
)

// Unit deltas indexed by Direction.
var (
	dx = [4]int{0, 1, 0, -1}
	dy = [4]int{1, 0, -1, 0}
)

// Left returns the direction 90° counter-clockwise from d.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the direction 90° clockwise from d.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Opposite returns the direction 180° from d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit cell offset of one move in direction d.
func (d Direction) Delta() (int, int) {
	return dx[d], dy[d]
}

// String returns the direction's compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}

// Position identifies a cell by its grid coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move returns the position one cell from p in direction d.
func (p Position) Move(d Direction) Position {
	return Position{X: p.X + dx[d], Y: p.Y + dy[d]}
}
