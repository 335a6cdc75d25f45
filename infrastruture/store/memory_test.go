package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup or create", func(t *testing.T) {
		s := NewMemoryStore(0)
		first, err := s.Acquire(ctx, "g1")
		assert.NoError(t, err)
		assert.Equal(t, "g1", first.ID)
		first.LastRun = 3
		assert.NoError(t, s.Release(ctx, first))

		again, err := s.Acquire(ctx, "g1")
		assert.NoError(t, err)
		assert.Equal(t, 3, again.LastRun)
		assert.NoError(t, s.Release(ctx, again))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		s := NewMemoryStore(0)
		a, _ := s.Acquire(ctx, "a")
		b, _ := s.Acquire(ctx, "b")
		a.LastRun = 7
		assert.Equal(t, 0, b.LastRun)
		assert.NoError(t, s.Release(ctx, a))
		assert.NoError(t, s.Release(ctx, b))
	})

	t.Run("same id serializes", func(t *testing.T) {
		s := NewMemoryStore(0)
		const workers = 16
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess, err := s.Acquire(ctx, "shared")
				assert.NoError(t, err)
				// Unsynchronized increment; the store's per-session lock
				// is the only thing keeping it correct.
				sess.LastRun++
				assert.NoError(t, s.Release(ctx, sess))
			}()
		}
		wg.Wait()

		sess, _ := s.Acquire(ctx, "shared")
		assert.Equal(t, workers, sess.LastRun)
		assert.NoError(t, s.Release(ctx, sess))
	})

	t.Run("idle sessions are evicted", func(t *testing.T) {
		s := NewMemoryStore(20 * time.Millisecond)
		defer s.Close()

		sess, _ := s.Acquire(ctx, "short-lived")
		sess.LastRun = 9
		assert.NoError(t, s.Release(ctx, sess))

		assert.Eventually(t, func() bool {
			s.mu.Lock()
			defer s.mu.Unlock()
			return len(s.entries) == 0
		}, time.Second, 10*time.Millisecond)

		// Re-acquiring after eviction starts fresh.
		fresh, _ := s.Acquire(ctx, "short-lived")
		assert.Equal(t, 0, fresh.LastRun)
		assert.NoError(t, s.Release(ctx, fresh))
	})
}
