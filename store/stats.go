// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"math"

	"github.com/danielhkuo/results-dashboard/models"
)

// StudentStatistics returns the average score and result count for each
// student with at least one result, best average first
func (s *Store) StudentStatistics(ctx context.Context) ([]models.StudentStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, AVG(r.score) AS average_score, COUNT(r.id) AS subjects_count
		FROM students s
		JOIN results r ON s.id = r.student_id
		GROUP BY s.id, s.name
		ORDER BY average_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query student statistics: %w", err)
	}
	defer rows.Close()

	stats := []models.StudentStats{}
	for rows.Next() {
		var st models.StudentStats
		if err := rows.Scan(&st.ID, &st.Name, &st.AverageScore, &st.SubjectsCount); err != nil {
			return nil, fmt.Errorf("failed to scan student statistics: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// SubjectStatistics is the per-subject counterpart of StudentStatistics
func (s *Store) SubjectStatistics(ctx context.Context) ([]models.SubjectStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sub.id, sub.name, AVG(r.score) AS average_score, COUNT(r.id) AS student_count
		FROM subjects sub
		JOIN results r ON sub.id = r.subject_id
		GROUP BY sub.id, sub.name
		ORDER BY average_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query subject statistics: %w", err)
	}
	defer rows.Close()

	stats := []models.SubjectStats{}
	for rows.Next() {
		var st models.SubjectStats
		if err := rows.Scan(&st.ID, &st.Name, &st.AverageScore, &st.StudentCount); err != nil {
			return nil, fmt.Errorf("failed to scan subject statistics: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// OverallStatistics returns the global average (rounded to 2 decimals),
// extrema and counts. Score fields are 0 when there are no results.
func (s *Store) OverallStatistics(ctx context.Context) (models.OverallStats, error) {
	var overall models.OverallStats

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(score), 0), COALESCE(MAX(score), 0), COALESCE(MIN(score), 0), COUNT(*)
		FROM results
	`).Scan(&overall.AverageScore, &overall.HighestScore, &overall.LowestScore, &overall.TotalResults)
	if err != nil {
		return models.OverallStats{}, fmt.Errorf("failed to query result statistics: %w", err)
	}
	overall.AverageScore = math.Round(overall.AverageScore*100) / 100

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&overall.TotalStudents); err != nil {
		return models.OverallStats{}, fmt.Errorf("failed to count students: %w", err)
	}

	return overall, nil
}

// Dashboard gathers all three statistics queries
func (s *Store) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var (
		d   models.Dashboard
		err error
	)

	if d.Students, err = s.StudentStatistics(ctx); err != nil {
		return models.Dashboard{}, err
	}
	if d.Subjects, err = s.SubjectStatistics(ctx); err != nil {
		return models.Dashboard{}, err
	}
	if d.Overall, err = s.OverallStatistics(ctx); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}
