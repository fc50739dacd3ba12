// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	statements := sqliteSchema
	if dialect == DialectPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Bootstrap creates the schema and seeds the demo data when the students
// table is empty. It reports whether this call inserted the seed data.
func Bootstrap(ctx context.Context, db *sql.DB, dialect Dialect, rng *rand.Rand) (bool, error) {
	if err := CreateSchema(ctx, db, dialect); err != nil {
		return false, err
	}
	return Seed(ctx, db, rng)
}

// Foreign keys are declared for documentation only. SQLite leaves them
// unenforced and the Postgres schema omits them; cascades are done by
// the store.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER,
		subject_id INTEGER,
		score REAL NOT NULL,
		FOREIGN KEY (student_id) REFERENCES students (id),
		FOREIGN KEY (subject_id) REFERENCES subjects (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_results_student_id ON results(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_subject_id ON results(subject_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		id SERIAL PRIMARY KEY,
		student_id INTEGER,
		subject_id INTEGER,
		score DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_results_student_id ON results(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_subject_id ON results(subject_id)`,
}
