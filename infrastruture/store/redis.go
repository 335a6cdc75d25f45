package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/micromouse-api/game"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyFmt = "mouse:session:%s"
	lockKeyFmt    = "mouse:session:%s:lock"
)

// RedisStore keeps session snapshots in Redis as JSON, one key per
// session. The per-session exclusive section is a redsync mutex, so the
// turn-at-a-time guarantee holds even with several API replicas behind
// one simulator. Key TTL is the eviction policy.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	mu     sync.Mutex
	locks  map[string]*redsync.Mutex
	ttl    time.Duration
}

// NewRedisStore initializes a RedisStore with the provided Redis client
// and TTL. A zero ttlSeconds keeps sessions until Redis itself evicts
// them.
func NewRedisStore(client *redis.Client, ttlSeconds int) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis store requires a client")
	}
	pool := goredis.NewPool(client)
	return &RedisStore{
		client: client,
		locker: redsync.New(pool),
		locks:  make(map[string]*redsync.Mutex),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Acquire takes the session's distributed lock, then loads its snapshot,
// creating fresh state when the key is absent.
func (rs *RedisStore) Acquire(ctx context.Context, id string) (*game.Session, error) {
	mutex := rs.locker.NewMutex(fmt.Sprintf(lockKeyFmt, id))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking session %s: %w", id, err)
	}
	rs.mu.Lock()
	rs.locks[id] = mutex
	rs.mu.Unlock()

	raw, err := rs.client.Get(ctx, fmt.Sprintf(sessionKeyFmt, id)).Bytes()
	if err == redis.Nil {
		return game.NewSession(id), nil
	}
	if err != nil {
		_, _ = mutex.UnlockContext(ctx)
		rs.mu.Lock()
		delete(rs.locks, id)
		rs.mu.Unlock()
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}

	var session game.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// A corrupt snapshot is unrecoverable; restart the session
		// rather than failing every future turn on it.
		return game.NewSession(id), nil
	}
	return &session, nil
}

// Release persists the session snapshot with the store TTL and drops the
// distributed lock.
func (rs *RedisStore) Release(ctx context.Context, session *game.Session) error {
	defer func() {
		rs.mu.Lock()
		mutex, ok := rs.locks[session.ID]
		delete(rs.locks, session.ID)
		rs.mu.Unlock()
		if ok {
			_, _ = mutex.UnlockContext(ctx)
		}
	}()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", session.ID, err)
	}
	if err := rs.client.Set(ctx, fmt.Sprintf(sessionKeyFmt, session.ID), raw, rs.ttl).Err(); err != nil {
		return fmt.Errorf("storing session %s: %w", session.ID, err)
	}
	return nil
}
