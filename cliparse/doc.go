// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Usage

Parse configuration from command-line arguments:

	cliparse.LoadEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

LoadEnv reads a .env file when one exists. Values already present in
the process environment win over the file.

# Configuration Sources

Settings are resolved in order: CLI flag, environment variable, default.

	Flag         Env            Default
	-host        HOST           127.0.0.1
	-p           PORT           5000
	-debug       DEBUG          false
	-d           DATABASE_URL   student_results.db
	-t           DATABASE_TYPE  sqlite
	-redis       REDIS_ADDR     (cache disabled)
	-cache-ttl   CACHE_TTL      30s

# Database Types

DATABASE_TYPE selects the driver:

  - sqlite: DATABASE_URL is a file path (modernc.org/sqlite, no cgo)
  - postgres: DATABASE_URL is a libpq connection string (lib/pq)

# Config Struct

	type Config struct {
		Host         string
		Port         int
		Debug        bool
		DatabaseURL  string
		DatabaseType string
		RedisAddr    string
		CacheTTL     time.Duration
	}

Addr() joins Host and Port for http.Server.
*/
package cliparse
