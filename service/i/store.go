package i

import (
	"context"

	"github.com/beka-birhanu/micromouse-api/game"
)

// SessionStore owns the session-id-keyed state shared across turns.
//
// Acquire returns the session for id with its per-session exclusive
// section held, creating fresh state when the id is unknown. Release
// persists the session and ends the exclusive section. The pair brackets
// exactly one turn; two concurrent turns for the same id serialize on
// Acquire.
type SessionStore interface {
	// Acquire locks and returns the session for id, creating it if absent.
	Acquire(ctx context.Context, id string) (*game.Session, error)

	// Release persists the session state and releases its lock.
	Release(ctx context.Context, session *game.Session) error
}
