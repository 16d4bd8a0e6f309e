// Package cache holds the Redis-backed cache of rendered history payloads.
// History is the hottest read path and is strictly per-user, so entries are
// keyed by user id and invalidated whenever that user's logs change.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moodsnap/moodsnap/internal/config"
)

// History caches the serialized /history response per user. With a nil
// Redis client every method degrades to a miss / no-op, so callers never
// branch on cache availability.
type History struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewHistory builds the cache from config. rdb may be nil.
func NewHistory(cfg config.HistoryCacheConfig, rdb *redis.Client) *History {
	if !cfg.Enabled {
		rdb = nil
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &History{rdb: rdb, ttl: ttl, prefix: cfg.Prefix}
}

func (h *History) key(userID uint64) string {
	return h.prefix + ":user:" + strconv.FormatUint(userID, 10)
}

// Get returns the cached payload for a user, or ok=false on miss/any error.
func (h *History) Get(ctx context.Context, userID uint64) ([]byte, bool) {
	if h.rdb == nil {
		return nil, false
	}
	bs, err := h.rdb.Get(ctx, h.key(userID)).Bytes()
	if err != nil || len(bs) == 0 {
		return nil, false
	}
	return bs, true
}

// Set stores a payload for a user. Errors are swallowed: a failed cache
// write only costs the next reader a database round trip.
func (h *History) Set(ctx context.Context, userID uint64, payload []byte) {
	if h.rdb == nil {
		return
	}
	_ = h.rdb.SetEx(ctx, h.key(userID), payload, h.ttl).Err()
}

// Invalidate drops a user's cached history. Called after every upload and
// delete so a read following a write always sees the new record.
func (h *History) Invalidate(ctx context.Context, userID uint64) {
	if h.rdb == nil {
		return
	}
	_ = h.rdb.Del(ctx, h.key(userID)).Err()
}
