// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /students", middleware.WithLogging(handler))

Each request gets an X-Request-ID (generated with google/uuid unless the
client sent one). Completion is logged with status and duration_ms.

# Metrics

	m := middleware.NewMetrics()
	mux.HandleFunc("GET /students", m.Instrument(handler))
	mux.Handle("GET /metrics", m.Handler())

Instrument counts requests by method, route pattern and status, and
records latency in a histogram. Each Metrics value owns its own
Prometheus registry.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "message")

# CORS Middleware

CORS allows cross-origin GET access to the JSON endpoints.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
