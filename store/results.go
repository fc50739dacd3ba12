// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/danielhkuo/results-dashboard/models"
)

// ListResults returns all results joined with student and subject names,
// ordered by student name then subject name. Results whose student or
// subject no longer exists are not listed.
func (s *Store) ListResults(ctx context.Context) ([]models.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.student_id, r.subject_id, r.score, s.name, sub.name
		FROM results r
		JOIN students s ON r.student_id = s.id
		JOIN subjects sub ON r.subject_id = sub.id
		ORDER BY s.name, sub.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.Result{}
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(&r.ID, &r.StudentID, &r.SubjectID, &r.Score, &r.StudentName, &r.SubjectName); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetResult loads a single result without the joined names
func (s *Store) GetResult(ctx context.Context, id int64) (models.Result, error) {
	var r models.Result
	err := s.db.QueryRowContext(ctx,
		"SELECT id, student_id, subject_id, score FROM results WHERE id = $1", id).
		Scan(&r.ID, &r.StudentID, &r.SubjectID, &r.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Result{}, ErrNotFound
	}
	if err != nil {
		return models.Result{}, fmt.Errorf("failed to query result %d: %w", id, err)
	}
	return r, nil
}

// CreateResult does not check that the student and subject exist
func (s *Store) CreateResult(ctx context.Context, studentID, subjectID int64, score float64) (int64, error) {
	if !validScore(score) {
		return 0, ErrInvalidInput
	}
	return s.insertReturningID(ctx, ErrInvalidInput,
		"INSERT INTO results (student_id, subject_id, score) VALUES ($1, $2, $3) RETURNING id",
		studentID, subjectID, score)
}

func (s *Store) UpdateResult(ctx context.Context, id, studentID, subjectID int64, score float64) error {
	if !validScore(score) {
		return ErrInvalidInput
	}
	return s.execUpdate(ctx, ErrInvalidInput,
		"UPDATE results SET student_id = $1, subject_id = $2, score = $3 WHERE id = $4",
		studentID, subjectID, score, id)
}

func (s *Store) DeleteResult(ctx context.Context, id int64) (bool, error) {
	return s.deleteByID(ctx, "results", id)
}

// Scores are unconstrained in range but must be finite
func validScore(score float64) bool {
	return !math.IsNaN(score) && !math.IsInf(score, 0)
}
