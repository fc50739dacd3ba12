// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the results dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, dash)

dash may be nil to run without the Redis cache.

# Endpoints

Operational:

	GET /health  - Liveness check
	GET /metrics - Prometheus metrics

Dashboard:

	GET /          - Statistics page (seeds demo data on first visit)
	GET /api/stats - Statistics as JSON (CORS enabled)

Records, for each of students, subjects and results:

	GET  /students              - List
	GET  /students/add          - Add form
	POST /students/add          - Create
	GET  /students/edit/{id}    - Edit form
	POST /students/edit/{id}    - Update
	POST /students/delete/{id}  - Delete

Deleting a student or subject also deletes its results.

# Middleware

Application routes are wrapped with request logging and Prometheus
instrumentation. Metrics are labelled by route pattern.
*/
package router
