package motion

import "github.com/beka-birhanu/micromouse-api/maze"

// straightToken picks the next longitudinal token for one half-step,
// regulating momentum toward Cruise, and returns it with the resulting
// momentum.
func straightToken(m int) (Token, int) {
	switch {
	case m < Cruise:
		return Accelerate, min(m+1, MaxMomentum)
	case m > Cruise:
		return Decelerate, max(m-1, 0)
	default:
		return Hold, m
	}
}

// brakeToZero returns the token chain shedding momentum m all the way to
// rest: Brake while two or more remain, then a single Decelerate.
func brakeToZero(m int) ([]Token, int) {
	var tokens []Token
	for m > 0 {
		if m >= 2 {
			tokens = append(tokens, Brake)
			m -= 2
		} else {
			tokens = append(tokens, Decelerate)
			m--
		}
	}
	return tokens, m
}

// preBrake returns Brake tokens until momentum is within limit.
func preBrake(m, limit int) ([]Token, int) {
	var tokens []Token
	for m > limit {
		tokens = append(tokens, Brake)
		m = max(m-2, 0)
	}
	return tokens, m
}

// inPlaceTurns returns the 45° rotations realizing the heading change
// from -> to. Only legal at rest; callers brake first.
func inPlaceTurns(from, to maze.Direction) []Token {
	switch (to - from + 4) % 4 {
	case 1:
		return []Token{RotateRight, RotateRight}
	case 2:
		return []Token{RotateRight, RotateRight, RotateRight, RotateRight}
	case 3:
		return []Token{RotateLeft, RotateLeft}
	default:
		return nil
	}
}

// NoOp returns a harmless, legal batch for a turn that otherwise has
// nothing to say: a paired rotation at rest, or a brake when moving. The
// response contract forbids empty batches on non-terminal turns.
func NoOp(momentum int) []Token {
	if momentum == 0 {
		return []Token{RotateLeft, RotateRight}
	}
	return []Token{Brake}
}

// PlanStep emits the tokens moving the pose one cell toward dir and
// commits the resulting pose. Heading changes brake fully to rest and
// rotate in place — the auditable default during exploration, where the
// next cell's walls are still a guess.
func PlanStep(p *Pose, dir maze.Direction) []Token {
	var tokens []Token

	if dir != p.Heading {
		brake, m := brakeToZero(p.Momentum)
		tokens = append(tokens, brake...)
		p.Momentum = m
		tokens = append(tokens, inPlaceTurns(p.Heading, dir)...)
		p.Heading = dir
	}

	// Two half-steps cross one cell.
	for i := 0; i < 2; i++ {
		t, m := straightToken(p.Momentum)
		tokens = append(tokens, t)
		p.Momentum = m
	}
	p.advance(dir)

	return tokens
}

// PlanRoute emits the full token sequence driving the pose along path, a
// sequence of adjacent cells starting at the pose's cell, and brakes to
// rest at the end. Corners are taken as moving wide corners after
// pre-braking — the speed-run optimization over stop-and-rotate — and
// reversals fall back to braking and turning in place.
func PlanRoute(p *Pose, path []maze.Position) []Token {
	var tokens []Token

	for i := 1; i < len(path); i++ {
		dir, ok := stepDirection(path[i-1], path[i])
		if !ok {
			// Non-adjacent leg; a corrupted cache must not emit garbage.
			continue
		}

		switch dir {
		case p.Heading:
			for j := 0; j < 2; j++ {
				t, m := straightToken(p.Momentum)
				tokens = append(tokens, t)
				p.Momentum = m
			}
		case p.Heading.Left(), p.Heading.Right():
			brake, m := preBrake(p.Momentum, CornerLimit)
			tokens = append(tokens, brake...)
			p.Momentum = m
			if dir == p.Heading.Left() {
				tokens = append(tokens, CornerLeft)
			} else {
				tokens = append(tokens, CornerRight)
			}
			p.Heading = dir
			// One more half-step to center in the entered cell.
			t, m2 := straightToken(p.Momentum)
			tokens = append(tokens, t)
			p.Momentum = m2
		default: // reversal
			brake, m := brakeToZero(p.Momentum)
			tokens = append(tokens, brake...)
			p.Momentum = m
			tokens = append(tokens, inPlaceTurns(p.Heading, dir)...)
			p.Heading = dir
			for j := 0; j < 2; j++ {
				t, m2 := straightToken(p.Momentum)
				tokens = append(tokens, t)
				p.Momentum = m2
			}
		}
		p.advance(dir)
	}

	brake, m := brakeToZero(p.Momentum)
	tokens = append(tokens, brake...)
	p.Momentum = m

	return tokens
}

// GoalEntry emits the stopping sequence once the pose stands inside the
// goal region. Aimed at the interior it only sheds speed; otherwise it
// re-aims with one moving corner into an adjacent goal cell before
// braking. At rest with no legal interior heading it emits nothing —
// idling beats an illegal move — and the caller pads the batch.
func GoalEntry(g *maze.Grid, p *Pose) []Token {
	pos := p.Position()
	if !maze.InGoal(pos) {
		return nil
	}

	// Already pointing into another goal cell across a non-wall edge.
	if maze.InGoal(pos.Move(p.Heading)) && !g.Blocked(p.X, p.Y, p.Heading) {
		tokens, m := brakeToZero(p.Momentum)
		p.Momentum = m
		return tokens
	}

	if p.Momentum == 0 {
		return nil
	}

	for _, dir := range []maze.Direction{p.Heading.Left(), p.Heading.Right()} {
		if !maze.InGoal(pos.Move(dir)) || g.Blocked(p.X, p.Y, dir) {
			continue
		}
		tokens, m := preBrake(p.Momentum, CornerLimit)
		p.Momentum = m
		if dir == p.Heading.Left() {
			tokens = append(tokens, CornerLeft)
		} else {
			tokens = append(tokens, CornerRight)
		}
		p.Heading = dir
		p.advance(dir)
		brake, m2 := brakeToZero(p.Momentum)
		p.Momentum = m2
		return append(tokens, brake...)
	}

	// No interior heading available; at least stop where we stand.
	tokens, m := brakeToZero(p.Momentum)
	p.Momentum = m
	return tokens
}

// stepDirection returns the cardinal direction from a to b when they are
// adjacent cells.
func stepDirection(a, b maze.Position) (maze.Direction, bool) {
	for d := maze.North; d <= maze.West; d++ {
		if a.Move(d) == b {
			return d, true
		}
	}
	return 0, false
}
