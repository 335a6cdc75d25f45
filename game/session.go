/*
Package game holds the per-run session state machine: it owns the
persisted pose, momentum, maze knowledge and mode for one logical robot
run, and drives one request/response turn at a time through sensor fusion,
navigation and motion planning.
*/
package game

import (
	"github.com/beka-birhanu/micromouse-api/maze"
	"github.com/beka-birhanu/micromouse-api/motion"
)

// Mode selects the per-turn behavior of a session.
type Mode int

const (
	// Exploring re-derives intent from the live distance field every turn.
	Exploring Mode = iota
	// SpeedRun replays a fully confirmed shortest path in capped batches.
	SpeedRun
)

// String returns the mode's name.
func (m Mode) String() string {
	if m == SpeedRun {
		return "SpeedRun"
	}
	return "Exploring"
}

// startPose is where every run begins: bottom-left corner, facing North,
// at rest.
var startPose = motion.Pose{X: 0, Y: 0, Heading: maze.North, Momentum: 0}

// Session is the unit of persistence for one logical run, keyed by the
// simulator's opaque game id. Maze knowledge survives run resets; pose,
// momentum, mode and queued instructions do not.
type Session struct {
	ID      string          `json:"id"`
	Maze    *maze.Grid      `json:"maze"`
	Pose    motion.Pose     `json:"pose"`
	Mode    Mode            `json:"mode"`
	Backlog []motion.Token  `json:"backlog,omitempty"`
	Route   []maze.Position `json:"route,omitempty"`
	LastRun int             `json:"last_run"`
}

// NewSession creates fresh state for a first-contact session id.
func NewSession(id string) *Session {
	return &Session{
		ID:   id,
		Maze: maze.New(),
		Pose: startPose,
		Mode: Exploring,
	}
}

// reset starts a new run: pose back to start, transient planning state
// cleared, learned walls retained. The mode becomes SpeedRun only when a
// fully confirmed route from the start still exists.
func (s *Session) reset(run int) {
	s.Pose = startPose
	s.Backlog = nil
	s.LastRun = run
	s.Route = nil
	s.Mode = Exploring
	if path := s.confirmedRoute(); path != nil {
		s.Route = path
		s.Mode = SpeedRun
	}
}
