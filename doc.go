// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the student results dashboard.

The dashboard keeps students, subjects and their scores in SQLite (or
PostgreSQL), serves HTML pages to manage them, and shows per-student,
per-subject and overall score statistics.

# Starting the Server

With no configuration the server listens on 127.0.0.1:5000 and stores data
in student_results.db, seeding demo data on first start:

	go run .

Or with flags:

	go run . -p 8080 -d results.db

# Commands

  - serve (default): run the HTTP server
  - seed: create the schema, insert demo data if empty, and exit
  - report: print the statistics tables to stdout and exit

# Configuration

Flags override environment variables; a .env file is loaded when present.

  - HOST (-host): Listen host (default: 127.0.0.1)
  - PORT (-p): Server port (default: 5000)
  - DEBUG (-debug): "true" enables debug logging
  - DATABASE_URL (-d): SQLite file path or PostgreSQL URL (default: student_results.db)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - REDIS_ADDR (-redis): Redis address for the dashboard cache (optional)
  - CACHE_TTL (-cache-ttl): Dashboard cache TTL (default: 30s)

FLASK_HOST, FLASK_PORT and FLASK_DEBUG are read when HOST, PORT and
DEBUG are unset.

# Architecture

  - handlers: HTTP request handlers (dashboard, students, subjects, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, metrics, CORS, JSON helpers
  - store: Data access and statistics queries
  - db: Connection, schema creation and demo data
  - cache: Optional Redis cache for the dashboard statistics
  - views: Embedded HTML templates
  - report: Terminal statistics report
  - models: Record and statistics types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
