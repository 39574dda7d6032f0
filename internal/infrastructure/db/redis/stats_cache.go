package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

const (
	statsKey        = "dashgrid:stats:totals"
	defaultStatsTTL = 30 * time.Second
)

// StatsCache keeps the latest statistics snapshot in Redis for ttl.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps client. A non-positive ttl falls back to 30s.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) when no snapshot is cached.
func (c *StatsCache) Get(ctx context.Context) (*domain.Statistics, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}
	return decodeStats(raw)
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.Statistics) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}

func decodeStats(raw []byte) (*domain.Statistics, error) {
	var stats domain.Statistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}
