// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Demo data inserted on first run
var (
	SeedStudents = []struct{ Name, Email string }{
		{"Alice Johnson", "alice@example.com"},
		{"Bob Smith", "bob@example.com"},
		{"Charlie Brown", "charlie@example.com"},
		{"Diana Prince", "diana@example.com"},
		{"Edward Norton", "edward@example.com"},
		{"Fiona Gallagher", "fiona@example.com"},
		{"George Clooney", "george@example.com"},
		{"Helen Keller", "helen@example.com"},
		{"Ian Malcolm", "ian@example.com"},
		{"Julia Roberts", "julia@example.com"},
	}

	SeedSubjects = []string{
		"Mathematics", "Physics", "Chemistry", "Biology", "English", "History", "Computer Science",
	}
)

// Seed score range
const (
	MinSeedScore = 50.0
	MaxSeedScore = 100.0
)

// Seed inserts the demo students, subjects and one result per student and
// subject, but only when the students table is empty. It reports whether
// anything was inserted. A nil rng uses a randomly seeded source.
func Seed(ctx context.Context, db *sql.DB, rng *rand.Rand) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count students: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range SeedStudents {
		_, err := tx.ExecContext(ctx, "INSERT INTO students (name, email) VALUES ($1, $2)", s.Name, s.Email)
		if IsUniqueViolation(err) {
			// A concurrent request seeded first
			slog.Debug("seed skipped, students already present")
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to insert seed student: %w", err)
		}
	}

	for _, name := range SeedSubjects {
		_, err := tx.ExecContext(ctx, "INSERT INTO subjects (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
		if err != nil {
			return false, fmt.Errorf("failed to insert seed subject: %w", err)
		}
	}

	studentIDs, err := queryIDs(ctx, tx, "SELECT id FROM students ORDER BY id")
	if err != nil {
		return false, err
	}
	subjectIDs, err := queryIDs(ctx, tx, "SELECT id FROM subjects ORDER BY id")
	if err != nil {
		return false, err
	}

	for _, studentID := range studentIDs {
		for _, subjectID := range subjectIDs {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO results (student_id, subject_id, score) VALUES ($1, $2, $3)",
				studentID, subjectID, RandomScore(rng))
			if err != nil {
				return false, fmt.Errorf("failed to insert seed result: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed data: %w", err)
	}

	slog.Info("demo data seeded",
		"students", len(studentIDs),
		"subjects", len(subjectIDs),
		"results", len(studentIDs)*len(subjectIDs),
	)
	return true, nil
}

// RandomScore returns a score uniformly drawn from [50, 100], rounded to
// two decimal places
func RandomScore(rng *rand.Rand) float64 {
	score := MinSeedScore + rng.Float64()*(MaxSeedScore-MinSeedScore)
	return math.Round(score*100) / 100
}

func queryIDs(ctx context.Context, tx *sql.Tx, query string) ([]int64, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
