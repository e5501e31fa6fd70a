package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmsight/farm-health-api/internal/core/ports"
)

const statsTTL = 30 * time.Second

// StatsCache caches dashboard summaries per requester scope.
// Key format: stats:<owner_id> (stats:all for the admin scope).
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats for scope. The second return value reports
// whether a cached entry existed.
func (c *StatsCache) Get(ctx context.Context, scope string) (*ports.DashboardStats, bool, error) {
	data, err := c.client.Get(ctx, c.key(scope)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, true, nil
}

// Set stores the stats for scope (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, scope string, stats *ports.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(scope), data, statsTTL).Err()
}

func (c *StatsCache) key(scope string) string {
	if scope == "" {
		return "stats:all"
	}
	return "stats:" + scope
}
