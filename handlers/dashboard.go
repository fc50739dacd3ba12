// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/cliparse"
	"github.com/danielhkuo/results-dashboard/db"
	"github.com/danielhkuo/results-dashboard/middleware"
	"github.com/danielhkuo/results-dashboard/store"
	"github.com/danielhkuo/results-dashboard/views"
)

type DashboardHandler struct {
	db      *sql.DB
	dialect db.Dialect
	store   *store.Store
	cache   *cache.Dashboard
}

func NewDashboardHandler(conn *sql.DB, cfg cliparse.Config, dash *cache.Dashboard) *DashboardHandler {
	return &DashboardHandler{
		db:      conn,
		dialect: db.Dialect(cfg.DatabaseType),
		store:   store.New(conn),
		cache:   dash,
	}
}

// Show handles GET /. Every visit makes sure the schema exists and the
// demo data is present before computing the statistics.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	seeded, err := db.Bootstrap(r.Context(), h.db, h.dialect, nil)
	if err != nil {
		serverError(w, "failed to bootstrap database", err)
		return
	}
	if seeded {
		slog.Info("demo data inserted")
		h.cache.Invalidate(r.Context())
	}

	d, err := h.cache.Get(r.Context(), h.store.Dashboard)
	if err != nil {
		serverError(w, "failed to load dashboard statistics", err)
		return
	}

	render(w, views.Dashboard, d)
}

// Stats handles GET /api/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	d, err := h.cache.Get(r.Context(), h.store.Dashboard)
	if err != nil {
		slog.Error("failed to load dashboard statistics", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, d)
}
