package service

import (
	"context"
	"fmt"

	"github.com/beka-birhanu/micromouse-api/game"
	"github.com/beka-birhanu/micromouse-api/motion"
	"github.com/beka-birhanu/micromouse-api/service/i"
	"github.com/google/uuid"
)

// TurnService orchestrates one simulator turn: session lookup under the
// store's exclusive section, the session's turn, and persistence.
type TurnService struct {
	store  i.SessionStore
	logger i.Logger
}

// NewTurnService creates a TurnService over the given store.
func NewTurnService(store i.SessionStore, logger i.Logger) (*TurnService, error) {
	if store == nil {
		return nil, fmt.Errorf("turn service requires a session store")
	}
	return &TurnService{store: store, logger: logger}, nil
}

// Play runs one turn for the session identified by id, creating state
// transparently for unknown ids and minting an id when the simulator sent
// none. No failure escapes to the transport: any internal inconsistency
// degrades to a legal, non-empty no-op batch.
func (t *TurnService) Play(ctx context.Context, id string, in game.TurnInput) (result game.TurnResult) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error(fmt.Sprintf("turn for session %q panicked: %v", id, r))
			result = game.TurnResult{Instructions: motion.Strings(motion.NoOp(0))}
		}
	}()

	if id == "" {
		id = uuid.NewString()
		t.logger.Warning(fmt.Sprintf("request without game id, assigned %s", id))
	}

	session, err := t.store.Acquire(ctx, id)
	if err != nil {
		// Availability over precision: answer from throwaway state
		// rather than failing the turn.
		t.logger.Error(fmt.Sprintf("acquiring session %s: %v", id, err))
		return game.NewSession(id).Turn(in)
	}
	defer func() {
		if err := t.store.Release(ctx, session); err != nil {
			t.logger.Error(fmt.Sprintf("releasing session %s: %v", id, err))
		}
	}()

	return session.Turn(in)
}

// SessionSnapshot is a read-only view of one session for inspection.
type SessionSnapshot struct {
	ID       string
	Mode     string
	Pose     motion.Pose
	Run      int
	Backlog  int
	RouteLen int
	Maze     string
}

// Inspect returns a snapshot of the session's persisted state. Ids never
// seen before read back as fresh state, mirroring the store's
// lookup-or-create contract.
func (t *TurnService) Inspect(ctx context.Context, id string) (*SessionSnapshot, error) {
	session, err := t.store.Acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := t.store.Release(ctx, session); err != nil {
			t.logger.Error(fmt.Sprintf("releasing session %s: %v", id, err))
		}
	}()

	return &SessionSnapshot{
		ID:       session.ID,
		Mode:     session.Mode.String(),
		Pose:     session.Pose,
		Run:      session.LastRun,
		Backlog:  len(session.Backlog),
		RouteLen: len(session.Route),
		Maze:     session.Maze.String(),
	}, nil
}
