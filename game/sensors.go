package game

// Sensor slot indexes, ordered -90° to +90° relative to the heading.
const (
	sensorLeft      = 0
	sensorDiagLeft  = 1
	sensorFront     = 2
	sensorDiagRight = 3
	sensorRight     = 4

	sensorCount = 5
)

// applySensors folds one turn's proximity reading into the wall
// knowledge. The three cardinal slots are authoritative: 1 confirms a
// wall, 0 confirms the edge open. The ±45° slots fire on corner-of-cell
// proximity and carry no wall-setting authority. A short or missing
// reading is treated as all-open rather than failing the turn; sticky
// walls make that recoverable on a later pass.
func (s *Session) applySensors(readings []int) {
	if len(readings) < sensorCount {
		readings = make([]int, sensorCount)
	}

	x, y, heading := s.Pose.X, s.Pose.Y, s.Pose.Heading
	s.Maze.SetWall(x, y, heading.Left(), readings[sensorLeft] == 1)
	s.Maze.SetWall(x, y, heading, readings[sensorFront] == 1)
	s.Maze.SetWall(x, y, heading.Right(), readings[sensorRight] == 1)

	s.Maze.MarkVisited(x, y)
}
