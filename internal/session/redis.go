package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMarkerStore keeps markers in Redis with a TTL matching the session
// cookie lifetime, approximating the browser's per-session storage.
type RedisMarkerStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewRedisMarkerStore(rdb *redis.Client, ttl time.Duration) *RedisMarkerStore {
	return &RedisMarkerStore{RDB: rdb, TTL: ttl}
}

func key(kind, sessionID, workerID string) string {
	return "seen:" + kind + ":" + sessionID + ":" + workerID
}

func (s *RedisMarkerStore) Claim(ctx context.Context, kind, sessionID, workerID string) (bool, error) {
	return s.RDB.SetNX(ctx, key(kind, sessionID, workerID), "1", s.TTL).Result()
}

func (s *RedisMarkerStore) Release(ctx context.Context, kind, sessionID, workerID string) error {
	return s.RDB.Del(ctx, key(kind, sessionID, workerID)).Err()
}
