/*
Package motion turns directional intent into legal batches of primitive
motion tokens under the momentum model: bounded forward speed, braking
before turns, rotations only at rest, and moving corners only at low
speed. It owns the pose/momentum bookkeeping the planner commits to.
*/
package motion

import "errors"

// Token is one primitive motion command in the wire vocabulary.
type Token string

// The token vocabulary. Longitudinal tokens advance one half-step along
// the current heading; corner tokens advance while committing to a 90°
// heading change.
const (
	Accelerate  Token = "F2"   // +1 momentum, one half-step forward
	Hold        Token = "F1"   // momentum unchanged, one half-step forward
	Decelerate  Token = "F0"   // -1 momentum, one half-step forward
	Brake       Token = "BB"   // -2 momentum, sheds speed before a turn
	RotateLeft  Token = "L"    // 45° left in place, legal only at rest
	RotateRight Token = "R"    // 45° right in place, legal only at rest
	CornerLeft  Token = "F1LW" // wide 90° left while advancing, momentum ≤ CornerLimit
	CornerRight Token = "F1RW" // wide 90° right while advancing, momentum ≤ CornerLimit
)

// Momentum model bounds.
const (
	MaxMomentum = 4 // hard cap on forward momentum
	Cruise      = 2 // momentum the planner regulates toward
	CornerLimit = 2 // highest momentum at which a wide corner is legal
)

// BatchCap is the most tokens one turn response carries. Longer plans stay
// queued so the controller can react to new sensor readings mid-route.
const BatchCap = 12

// ErrIllegalToken reports a token whose preconditions the current momentum
// violates.
var ErrIllegalToken = errors.New("token illegal at current momentum")

// Apply returns the momentum after executing t at momentum m, or
// ErrIllegalToken when t is not legal at m. Momentum never leaves
// [0, MaxMomentum].
func Apply(m int, t Token) (int, error) {
	switch t {
	case Accelerate:
		return min(m+1, MaxMomentum), nil
	case Hold:
		return m, nil
	case Decelerate:
		return max(m-1, 0), nil
	case Brake:
		return max(m-2, 0), nil
	case RotateLeft, RotateRight:
		if m != 0 {
			return m, ErrIllegalToken
		}
		return 0, nil
	case CornerLeft, CornerRight:
		if m > CornerLimit {
			return m, ErrIllegalToken
		}
		return m, nil
	default:
		return m, ErrIllegalToken
	}
}

// Strings converts a token batch to the wire representation.
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}
