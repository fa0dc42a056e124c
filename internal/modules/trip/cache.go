// README: Redis-backed cache for per-user trip summary lists.
package trip

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummaryCache holds listTripsForUser results for a short TTL. Only our own
// persisted data is cached, never provider responses. A nil client disables
// the cache entirely.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

func summaryKey(userID string) string {
	return "trips:summaries:" + userID
}

// Get returns the cached summaries for a user, or (nil, false) on miss or
// any cache error. Cache errors are never surfaced.
func (c *SummaryCache) Get(ctx context.Context, userID string) ([]Summary, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, summaryKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var summaries []Summary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return nil, false
	}
	return summaries, true
}

func (c *SummaryCache) Set(ctx context.Context, userID string, summaries []Summary) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, summaryKey(userID), data, c.ttl).Err()
}

// Invalidate drops the cached list after a save or delete.
func (c *SummaryCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, summaryKey(userID)).Err()
}
