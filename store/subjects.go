// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/results-dashboard/models"
)

func (s *Store) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM subjects ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func (s *Store) GetSubject(ctx context.Context, id int64) (models.Subject, error) {
	var sub models.Subject
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM subjects WHERE id = $1", id).
		Scan(&sub.ID, &sub.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subject{}, ErrNotFound
	}
	if err != nil {
		return models.Subject{}, fmt.Errorf("failed to query subject %d: %w", id, err)
	}
	return sub, nil
}

func (s *Store) CreateSubject(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if err := requireText(name); err != nil {
		return 0, err
	}
	return s.insertReturningID(ctx, ErrDuplicateSubjectName,
		"INSERT INTO subjects (name) VALUES ($1) RETURNING id", name)
}

func (s *Store) UpdateSubject(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if err := requireText(name); err != nil {
		return err
	}
	return s.execUpdate(ctx, ErrDuplicateSubjectName,
		"UPDATE subjects SET name = $1 WHERE id = $2", name, id)
}

// DeleteSubject deletes the subject's results and then the subject
func (s *Store) DeleteSubject(ctx context.Context, id int64) (bool, error) {
	return s.deleteCascade(ctx, "subjects", "subject_id", id)
}
