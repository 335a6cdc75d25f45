package game

import (
	"github.com/beka-birhanu/micromouse-api/maze"
	"github.com/beka-birhanu/micromouse-api/motion"
	"github.com/beka-birhanu/micromouse-api/navigation"
)

// TurnInput is one turn's report from the simulator, already decoded from
// the wire.
type TurnInput struct {
	SensorData  []int
	Momentum    int
	Run         int
	Crashed     bool
	GoalReached bool
}

// TurnResult is the session's answer for one turn.
type TurnResult struct {
	Instructions []string
	End          bool
}

// Turn drives the session through one request/response exchange: detect
// resets and terminal conditions, fuse sensors, then either drain queued
// instructions or plan new ones. Every non-terminal turn answers with at
// least one instruction.
func (s *Session) Turn(in TurnInput) TurnResult {
	if in.Crashed {
		// The attempt is over; the next run counter change rebuilds
		// transient state while the maze knowledge stays.
		s.Backlog = nil
		return TurnResult{Instructions: []string{}, End: true}
	}

	if in.Run != s.LastRun {
		s.reset(in.Run)
	}

	// The simulator's momentum report is authoritative over our tracking.
	s.Pose.Momentum = clampMomentum(in.Momentum)

	s.applySensors(in.SensorData)

	// Drain a pending plan before planning anything new.
	if len(s.Backlog) > 0 {
		return TurnResult{Instructions: s.drain()}
	}

	if in.GoalReached {
		return TurnResult{Instructions: []string{}}
	}

	var tokens []motion.Token
	switch s.Mode {
	case SpeedRun:
		tokens = s.speedRunTurn()
	default:
		tokens = s.exploreTurn()
	}
	s.Backlog = append(s.Backlog, tokens...)

	out := s.drain()
	if len(out) == 0 {
		out = motion.Strings(motion.NoOp(s.Pose.Momentum))
	}
	return TurnResult{Instructions: out}
}

// exploreTurn plans the next move from the live distance field: stop once
// inside the goal region, otherwise descend toward it, streaming extra
// straight steps while a confirmed corridor lasts.
func (s *Session) exploreTurn() []motion.Token {
	field := navigation.DistanceToGoal(s.Maze)

	if field.At(s.Pose.X, s.Pose.Y) == 0 {
		return motion.GoalEntry(s.Maze, &s.Pose)
	}

	step, ok := navigation.NextStep(s.Maze, field, s.Pose.Position(), s.Pose.Heading)
	if !ok {
		// Every edge confirmed walled — a malformed maze. Stay legal.
		return motion.NoOp(s.Pose.Momentum)
	}

	tokens := motion.PlanStep(&s.Pose, step.Dir)
	tokens = append(tokens, s.extendCorridor(field, len(tokens))...)

	// Remember a fully confirmed route as soon as one exists; it gates
	// the switch to SpeedRun on the next reset.
	if path := s.confirmedRoute(); path != nil {
		s.Route = path
	}

	return tokens
}

// speedRunTurn plans the whole cached route in one shot from the start
// cell. Any precondition failure reverts to exploration for this and
// subsequent turns.
func (s *Session) speedRunTurn() []motion.Token {
	if s.Pose.Position() != startPose.Position() || s.Pose.Momentum != 0 {
		s.Mode = Exploring
		return s.exploreTurn()
	}

	path := s.confirmedRoute()
	if path == nil {
		s.Mode = Exploring
		s.Route = nil
		return s.exploreTurn()
	}

	s.Route = path
	return motion.PlanRoute(&s.Pose, path)
}

// extendCorridor keeps planning straight steps while the current cell is
// a recognized corridor — both sides confirmed walls, front confirmed
// open — and the cell ahead is strictly closer to the goal. Batching the
// run amortizes the per-turn round trip; the cap keeps the session
// reactive to new readings.
func (s *Session) extendCorridor(field *navigation.DistanceField, used int) []motion.Token {
	var tokens []motion.Token
	for used+len(tokens) <= motion.BatchCap-2 {
		x, y, heading := s.Pose.X, s.Pose.Y, s.Pose.Heading
		if s.Maze.EdgeAt(x, y, heading.Left()) != maze.Wall ||
			s.Maze.EdgeAt(x, y, heading.Right()) != maze.Wall ||
			s.Maze.EdgeAt(x, y, heading) != maze.Open {
			break
		}
		ahead := s.Pose.Position().Move(heading)
		if field.At(ahead.X, ahead.Y) >= field.At(x, y) {
			break
		}
		tokens = append(tokens, motion.PlanStep(&s.Pose, heading)...)
	}
	return tokens
}

// confirmedRoute returns the shortest all-confirmed path from the start
// cell to the goal, or nil while none is known.
func (s *Session) confirmedRoute() []maze.Position {
	return navigation.ConfirmedPath(s.Maze, startPose.Position())
}

// drain sends up to BatchCap queued tokens and keeps the rest for the
// next turn.
func (s *Session) drain() []string {
	n := min(len(s.Backlog), motion.BatchCap)
	out := motion.Strings(s.Backlog[:n])
	s.Backlog = s.Backlog[n:]
	if len(s.Backlog) == 0 {
		s.Backlog = nil
	}
	return out
}

func clampMomentum(m int) int {
	return min(max(m, 0), motion.MaxMomentum)
}
