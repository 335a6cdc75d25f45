package motion

import (
	"testing"

	"github.com/beka-birhanu/micromouse-api/maze"
	"github.com/stretchr/testify/assert"
)

// replay folds Apply over a batch, asserting every token is legal at its
// momentum and the bound is never violated.
func replay(t *testing.T, start int, tokens []Token) int {
	t.Helper()
	m := start
	for i, tok := range tokens {
		next, err := Apply(m, tok)
		assert.NoError(t, err, "token %d (%s) illegal at momentum %d", i, tok, m)
		assert.GreaterOrEqual(t, next, 0)
		assert.LessOrEqual(t, next, MaxMomentum)
		m = next
	}
	return m
}

func TestApply(t *testing.T) {
	t.Run("momentum stays within bounds", func(t *testing.T) {
		m, err := Apply(MaxMomentum, Accelerate)
		assert.NoError(t, err)
		assert.Equal(t, MaxMomentum, m)

		m, err = Apply(0, Brake)
		assert.NoError(t, err)
		assert.Equal(t, 0, m)

		m, err = Apply(1, Brake)
		assert.NoError(t, err)
		assert.Equal(t, 0, m)
	})

	t.Run("rotations are rest-only", func(t *testing.T) {
		_, err := Apply(1, RotateLeft)
		assert.ErrorIs(t, err, ErrIllegalToken)
		_, err = Apply(0, RotateRight)
		assert.NoError(t, err)
	})

	t.Run("corners need low momentum", func(t *testing.T) {
		_, err := Apply(CornerLimit+1, CornerLeft)
		assert.ErrorIs(t, err, ErrIllegalToken)
		_, err = Apply(CornerLimit, CornerRight)
		assert.NoError(t, err)
	})

	t.Run("unknown token rejected", func(t *testing.T) {
		_, err := Apply(0, Token("XX"))
		assert.ErrorIs(t, err, ErrIllegalToken)
	})
}

func TestPlanStep(t *testing.T) {
	t.Run("straight crosses one cell in two half-steps", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.North}
		tokens := PlanStep(&p, maze.North)
		assert.Equal(t, []Token{Accelerate, Accelerate}, tokens)
		assert.Equal(t, Pose{X: 0, Y: 1, Heading: maze.North, Momentum: 2}, p)
		assert.Equal(t, 2, replay(t, 0, tokens))
	})

	t.Run("holds at cruise", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.East, Momentum: Cruise}
		tokens := PlanStep(&p, maze.East)
		assert.Equal(t, []Token{Hold, Hold}, tokens)
		assert.Equal(t, Cruise, p.Momentum)
	})

	t.Run("sheds excess momentum", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.East, Momentum: 4}
		tokens := PlanStep(&p, maze.East)
		assert.Equal(t, []Token{Decelerate, Decelerate}, tokens)
		assert.Equal(t, 2, p.Momentum)
	})

	t.Run("turn brakes to rest then rotates in place", func(t *testing.T) {
		p := Pose{X: 2, Y: 2, Heading: maze.North, Momentum: 3}
		tokens := PlanStep(&p, maze.East)
		assert.Equal(t, []Token{Brake, Decelerate, RotateRight, RotateRight, Accelerate, Accelerate}, tokens)
		assert.Equal(t, Pose{X: 3, Y: 2, Heading: maze.East, Momentum: 2}, p)
		replay(t, 3, tokens)
	})

	t.Run("reversal uses four rotations", func(t *testing.T) {
		p := Pose{X: 2, Y: 2, Heading: maze.North}
		tokens := PlanStep(&p, maze.South)
		assert.Equal(t, []Token{RotateRight, RotateRight, RotateRight, RotateRight, Accelerate, Accelerate}, tokens)
		assert.Equal(t, Pose{X: 2, Y: 1, Heading: maze.South, Momentum: 2}, p)
		replay(t, 0, tokens)
	})
}

func TestPlanRoute(t *testing.T) {
	t.Run("corner taken as moving wide corner", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.North}
		path := []maze.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}
		tokens := PlanRoute(&p, path)
		assert.Equal(t, []Token{Accelerate, Accelerate, Hold, Hold, CornerRight, Hold, Brake}, tokens)
		assert.Equal(t, Pose{X: 1, Y: 2, Heading: maze.East, Momentum: 0}, p)
		assert.Equal(t, 0, replay(t, 0, tokens))
	})

	t.Run("ends at rest", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.North}
		path := []maze.Position{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}}
		tokens := PlanRoute(&p, path)
		assert.Equal(t, 0, p.Momentum)
		assert.Equal(t, 0, replay(t, 0, tokens))
		assert.Equal(t, 4, p.Y)
	})

	t.Run("skips corrupt non-adjacent legs", func(t *testing.T) {
		p := Pose{X: 0, Y: 0, Heading: maze.North}
		tokens := PlanRoute(&p, []maze.Position{{X: 0, Y: 0}, {X: 5, Y: 5}})
		assert.Empty(t, tokens)
		assert.Equal(t, 0, p.X)
	})
}

func TestGoalEntry(t *testing.T) {
	t.Run("aimed at the interior sheds exactly the needed speed", func(t *testing.T) {
		g := maze.New()
		p := Pose{X: 7, Y: 7, Heading: maze.East, Momentum: 1}
		tokens := GoalEntry(g, &p)
		assert.Equal(t, []Token{Decelerate}, tokens)
		assert.Equal(t, 0, p.Momentum)
	})

	t.Run("re-aims with one moving corner while advancing", func(t *testing.T) {
		g := maze.New()
		p := Pose{X: 7, Y: 7, Heading: maze.West, Momentum: 2}
		tokens := GoalEntry(g, &p)
		assert.Equal(t, []Token{CornerRight, Brake}, tokens)
		assert.Equal(t, Pose{X: 7, Y: 8, Heading: maze.North, Momentum: 0}, p)
		replay(t, 2, tokens)
	})

	t.Run("at rest with no interior heading stays idle", func(t *testing.T) {
		g := maze.New()
		p := Pose{X: 7, Y: 7, Heading: maze.West, Momentum: 0}
		assert.Empty(t, GoalEntry(g, &p))
	})

	t.Run("outside the goal emits nothing", func(t *testing.T) {
		g := maze.New()
		p := Pose{X: 0, Y: 0, Heading: maze.North, Momentum: 2}
		assert.Empty(t, GoalEntry(g, &p))
	})

	t.Run("interior edge walled off still stops", func(t *testing.T) {
		g := maze.New()
		g.SetWall(7, 7, maze.East, true)
		g.SetWall(7, 7, maze.North, true)
		p := Pose{X: 7, Y: 7, Heading: maze.East, Momentum: 3}
		tokens := GoalEntry(g, &p)
		assert.Equal(t, []Token{Brake, Decelerate}, tokens)
		assert.Equal(t, 0, p.Momentum)
	})
}

func TestNoOp(t *testing.T) {
	assert.Equal(t, []Token{RotateLeft, RotateRight}, NoOp(0))
	assert.Equal(t, []Token{Brake}, NoOp(3))
	replay(t, 0, NoOp(0))
	replay(t, 3, NoOp(3))
}
