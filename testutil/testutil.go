// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/results-dashboard/cache"
	"github.com/danielhkuo/results-dashboard/cliparse"
	"github.com/danielhkuo/results-dashboard/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestCache starts an in-process Redis and returns a dashboard cache
// backed by it
func SetupTestCache(t *testing.T) (*cache.Dashboard, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return cache.NewDashboard(rdb, time.Minute), mr
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:         "127.0.0.1",
		Port:         5000,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		CacheTTL:     time.Second,
	}
}

// CreateTestStudent inserts a student and returns its id
func CreateTestStudent(t *testing.T, conn *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow("INSERT INTO students (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return id
}

// CreateTestSubject inserts a subject and returns its id
func CreateTestSubject(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow("INSERT INTO subjects (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test subject: %v", err)
	}
	return id
}

// CreateTestResult inserts a result and returns its id
func CreateTestResult(t *testing.T, conn *sql.DB, studentID, subjectID int64, score float64) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(
		"INSERT INTO results (student_id, subject_id, score) VALUES ($1, $2, $3) RETURNING id",
		studentID, subjectID, score,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeFormRequest creates a URL-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 303 See Other to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected status 303, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertBodyContains checks that the response body contains substr
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, substr string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), substr) {
		t.Errorf("Expected body to contain %q. Body: %s", substr, w.Body.String())
	}
}
