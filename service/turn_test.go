package service

import (
	"context"
	"io"
	"testing"

	"github.com/beka-birhanu/micromouse-api/config"
	"github.com/beka-birhanu/micromouse-api/game"
	"github.com/beka-birhanu/micromouse-api/infrastruture/store"
	"github.com/beka-birhanu/micromouse-api/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TurnService {
	t.Helper()
	lg, err := logger.New("TEST", config.ColorReset, io.Discard)
	require.NoError(t, err)
	svc, err := NewTurnService(store.NewMemoryStore(0), lg)
	require.NoError(t, err)
	return svc
}

func TestPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("turn answers with instructions", func(t *testing.T) {
		svc := newTestService(t)
		res := svc.Play(ctx, "g1", game.TurnInput{SensorData: []int{0, 0, 0, 0, 1}})
		assert.NotEmpty(t, res.Instructions)
		assert.False(t, res.End)
	})

	t.Run("state persists between turns", func(t *testing.T) {
		svc := newTestService(t)
		svc.Play(ctx, "g1", game.TurnInput{SensorData: []int{0, 0, 0, 0, 1}})

		snap, err := svc.Inspect(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "Exploring", snap.Mode)
		assert.Equal(t, 1, snap.Pose.Y)
	})

	t.Run("missing game id gets a generated session", func(t *testing.T) {
		svc := newTestService(t)
		res := svc.Play(ctx, "", game.TurnInput{SensorData: []int{0, 0, 0, 0, 0}})
		assert.NotEmpty(t, res.Instructions)
	})

	t.Run("crash turn is terminal", func(t *testing.T) {
		svc := newTestService(t)
		res := svc.Play(ctx, "g1", game.TurnInput{Crashed: true})
		assert.Empty(t, res.Instructions)
		assert.True(t, res.End)
	})
}

func TestInspect(t *testing.T) {
	svc := newTestService(t)
	snap, err := svc.Inspect(context.Background(), "never-played")
	assert.NoError(t, err)
	assert.Equal(t, "never-played", snap.ID)
	assert.Contains(t, snap.Maze, "G") // goal cells are rendered
}
