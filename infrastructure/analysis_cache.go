package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis creates a Redis client and verifies the connection
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return rdb, nil
}

// AnalysisCache caches computed analysis snapshots in Redis. Snapshots are
// expensive to build over large windows and identical requests repeat often.
type AnalysisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewAnalysisCache creates a new analysis cache with the given TTL
func NewAnalysisCache(rdb *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{rdb: rdb, ttl: ttl}
}

func snapshotKey(game entities.GameType, days int) string {
	return fmt.Sprintf("analysis:%s:%d", game, days)
}

// Get returns a cached snapshot, reporting whether one was found. Redis
// failures are treated as cache misses so analysis still works without it.
func (c *AnalysisCache) Get(ctx context.Context, game entities.GameType, days int) (*entities.AnalysisSnapshot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, snapshotKey(game, days)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.WithError(err).Warn("Failed to read analysis snapshot from cache")
		return nil, false
	}

	var snapshot entities.AnalysisSnapshot
	if err := json.Unmarshal(b, &snapshot); err != nil {
		log.WithError(err).Warn("Failed to decode cached analysis snapshot")
		return nil, false
	}

	return &snapshot, true
}

// Set stores a snapshot under its variant and window key
func (c *AnalysisCache) Set(ctx context.Context, game entities.GameType, days int, snapshot *entities.AnalysisSnapshot) {
	if c == nil || c.rdb == nil {
		return
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		log.WithError(err).Warn("Failed to encode analysis snapshot for cache")
		return
	}

	if err := c.rdb.Set(ctx, snapshotKey(game, days), b, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("Failed to cache analysis snapshot")
	}
}

// Invalidate drops all cached snapshots for a variant. Called after a new
// draw for that variant is imported.
func (c *AnalysisCache) Invalidate(ctx context.Context, game entities.GameType) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("analysis:%s:*", game)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.WithError(err).Warn("Failed to invalidate cached analysis snapshot")
		}
	}
	if err := iter.Err(); err != nil {
		log.WithError(err).Warn("Failed to scan analysis cache keys")
	}
}
