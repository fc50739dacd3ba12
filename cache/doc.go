// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache provides an optional Redis cache for the dashboard
statistics.

	rdb, err := cache.Connect(ctx, cfg.RedisAddr)
	dash := cache.NewDashboard(rdb, cfg.CacheTTL)

	d, err := dash.Get(ctx, st.Dashboard)
	dash.Invalidate(ctx) // after any write

With no REDIS_ADDR the client is nil and every Get runs the loader.
Redis errors are logged and fall back to the loader.
*/
package cache
