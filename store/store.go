// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/results-dashboard/db"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateSubjectName = errors.New("subject already exists")
	ErrInvalidInput         = errors.New("invalid input")
)

// Store is the data access layer over a shared connection pool
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// deleteCascade removes the dependent results and then the parent row in
// one transaction. It reports whether the parent row existed.
func (s *Store) deleteCascade(ctx context.Context, table, fkColumn string, id int64) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM results WHERE "+fkColumn+" = $1", id); err != nil {
		return false, fmt.Errorf("failed to delete results for %s %d: %w", table, id, err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}
	return affected > 0, nil
}

// execUpdate runs an UPDATE and maps zero affected rows to ErrNotFound
// and unique violations to dupErr
func (s *Store) execUpdate(ctx context.Context, dupErr error, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if db.IsUniqueViolation(err) {
		return dupErr
	}
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// insertReturningID runs an INSERT ... RETURNING id
func (s *Store) insertReturningID(ctx context.Context, dupErr error, query string, args ...any) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if db.IsUniqueViolation(err) {
		return 0, dupErr
	}
	if err != nil {
		return 0, fmt.Errorf("insert failed: %w", err)
	}
	return id, nil
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

func requireText(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}
