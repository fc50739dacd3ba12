// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/results-dashboard/models"
)

// DashboardKey prefixes the cached dashboard snapshots. The snapshot for
// generation N lives at DashboardKey + ":" + N.
const DashboardKey = "results-dashboard:dashboard"

// GenerationKey holds the current snapshot generation. Invalidate bumps it.
const GenerationKey = "results-dashboard:dashboard:gen"

// Connect returns a Redis client for addr after a successful ping.
// An empty addr returns (nil, nil): caching is disabled.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		slog.Warn("REDIS_ADDR not set, dashboard caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("connected to redis", "addr", addr)
	return rdb, nil
}

// DashboardLoader computes a fresh dashboard on a cache miss
type DashboardLoader func(ctx context.Context) (models.Dashboard, error)

// Dashboard caches the dashboard statistics in Redis. A nil *Dashboard or
// one built with a nil client passes every call straight to the loader.
// Redis failures are logged and never fail the request.
type Dashboard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDashboard(rdb *redis.Client, ttl time.Duration) *Dashboard {
	return &Dashboard{rdb: rdb, ttl: ttl}
}

// Enabled reports whether a Redis client is configured
func (c *Dashboard) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get returns the cached dashboard, or loads and stores it.
//
// The generation is read before loading, so a snapshot computed while a
// write commits is stored under the old generation and never served
// after that write's Invalidate.
func (c *Dashboard) Get(ctx context.Context, load DashboardLoader) (models.Dashboard, error) {
	if !c.Enabled() {
		return load(ctx)
	}

	gen, err := c.rdb.Get(ctx, GenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("dashboard cache generation read failed", "error", err)
		return load(ctx)
	}
	key := snapshotKey(gen)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var d models.Dashboard
		if err := json.Unmarshal(raw, &d); err == nil {
			return d, nil
		}
		slog.Warn("discarding malformed dashboard cache entry", "error", err)
	case errors.Is(err, redis.Nil):
		// miss
	default:
		slog.Warn("dashboard cache read failed", "error", err)
	}

	d, err := load(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}

	payload, err := json.Marshal(d)
	if err != nil {
		slog.Warn("failed to encode dashboard for cache", "error", err)
		return d, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("dashboard cache write failed", "error", err)
	}
	return d, nil
}

// Invalidate moves to a new generation so the current snapshot is no
// longer read. Called after every successful write.
func (c *Dashboard) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Incr(ctx, GenerationKey).Err(); err != nil {
		slog.Warn("dashboard cache invalidation failed", "error", err)
	}
}

func snapshotKey(gen int64) string {
	return DashboardKey + ":" + strconv.FormatInt(gen, 10)
}
