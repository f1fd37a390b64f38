package cache

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"
	"github.com/recolab/reco-backend/internal/logger"
)

const keyPrefix = "reco:recs:"

// RecommendationCache is a read-through cache for recommendation listings.
// It is optional: NewRecommendationCache returns (nil, nil) when REDIS_ADDR
// is unset and a nil cache is a no-op on every method.
type RecommendationCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewRecommendationCache(log *logger.Logger) (*RecommendationCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Info("REDIS_ADDR not set, recommendation cache disabled")
		return nil, nil
	}

	ttlSeconds := 300
	if raw := strings.TrimSpace(os.Getenv("RECO_CACHE_TTL_SECONDS")); raw != "" {
		if parsed, err := time.ParseDuration(raw + "s"); err == nil && parsed > 0 {
			ttlSeconds = int(parsed.Seconds())
		}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RecommendationCache{
		log: log.With("service", "RecommendationCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// UserListKey builds the cache key for one shaped user listing. The shape
// flags are part of the key because redaction and filtering happen before
// caching.
func UserListKey(userID uuid.UUID, limit int, includeReason bool, algoVersion string) string {
	return fmt.Sprintf("%suser:%s:limit=%d:reason=%t:algo=%s", keyPrefix, userID, limit, includeReason, algoVersion)
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (c *RecommendationCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

// InvalidateAll drops every cached listing. Called after a successful
// recompute so readers observe the replaced rows.
func (c *RecommendationCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("cache invalidate failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("cache scan failed", "error", err)
	}
}

func (c *RecommendationCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
