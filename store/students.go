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

// ListStudents returns all students ordered by name
func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email FROM students ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Email); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// GetStudent returns ErrNotFound when no student has the given id
func (s *Store) GetStudent(ctx context.Context, id int64) (models.Student, error) {
	var st models.Student
	err := s.db.QueryRowContext(ctx, "SELECT id, name, email FROM students WHERE id = $1", id).
		Scan(&st.ID, &st.Name, &st.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to query student %d: %w", id, err)
	}
	return st, nil
}

// CreateStudent inserts a student and returns its id. A taken email
// yields ErrDuplicateEmail.
func (s *Store) CreateStudent(ctx context.Context, name, email string) (int64, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if err := requireText(name, email); err != nil {
		return 0, err
	}
	return s.insertReturningID(ctx, ErrDuplicateEmail,
		"INSERT INTO students (name, email) VALUES ($1, $2) RETURNING id", name, email)
}

// UpdateStudent returns ErrDuplicateEmail or ErrNotFound on failure
func (s *Store) UpdateStudent(ctx context.Context, id int64, name, email string) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if err := requireText(name, email); err != nil {
		return err
	}
	return s.execUpdate(ctx, ErrDuplicateEmail,
		"UPDATE students SET name = $1, email = $2 WHERE id = $3", name, email, id)
}

// DeleteStudent deletes the student's results and then the student.
// It reports whether the student existed.
func (s *Store) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	return s.deleteCascade(ctx, "students", "student_id", id)
}
