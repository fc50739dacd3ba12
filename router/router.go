// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/cliparse"
	"github.com/danielhkuo/results-dashboard/handlers"
	"github.com/danielhkuo/results-dashboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, dash *cache.Dashboard) *http.ServeMux {
	mux := http.NewServeMux()
	metrics := middleware.NewMetrics()

	// Every application route is counted and logged
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, metrics.Instrument(middleware.WithLogging(h)))
	}

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(db, cfg, dash)
	studentHandler := handlers.NewStudentHandler(db, dash)
	subjectHandler := handlers.NewSubjectHandler(db, dash)
	resultHandler := handlers.NewResultHandler(db, dash)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Dashboard ({$} keeps unknown paths from falling through to it)
	handle("GET /{$}", dashboardHandler.Show)
	handle("GET /api/stats", middleware.CORS(dashboardHandler.Stats))
	handle("OPTIONS /api/stats", middleware.CORS(dashboardHandler.Stats))

	// Students
	handle("GET /students", studentHandler.List)
	handle("GET /students/add", studentHandler.AddForm)
	handle("POST /students/add", studentHandler.Add)
	handle("GET /students/edit/{id}", studentHandler.EditForm)
	handle("POST /students/edit/{id}", studentHandler.Edit)
	handle("POST /students/delete/{id}", studentHandler.Delete)

	// Subjects
	handle("GET /subjects", subjectHandler.List)
	handle("GET /subjects/add", subjectHandler.AddForm)
	handle("POST /subjects/add", subjectHandler.Add)
	handle("GET /subjects/edit/{id}", subjectHandler.EditForm)
	handle("POST /subjects/edit/{id}", subjectHandler.Edit)
	handle("POST /subjects/delete/{id}", subjectHandler.Delete)

	// Results
	handle("GET /results", resultHandler.List)
	handle("GET /results/add", resultHandler.AddForm)
	handle("POST /results/add", resultHandler.Add)
	handle("GET /results/edit/{id}", resultHandler.EditForm)
	handle("POST /results/edit/{id}", resultHandler.Edit)
	handle("POST /results/delete/{id}", resultHandler.Delete)

	return mux
}
