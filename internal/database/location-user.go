package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

func scanLocationUser(row interface{ Scan(...any) error }) (*entity.LocationUser, error) {
	var a entity.LocationUser
	var created int64
	err := row.Scan(&a.ID, &a.UserId, &a.LocationId, &a.Status, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan location user: %w", err)
	}
	a.CreationDate = time.Unix(created, 0)
	return &a, nil
}

func (s *SQLite) ListLocationUsers(ctx context.Context) ([]entity.LocationUser, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, location_id, status, creation_date FROM location_users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list location users: %w", err)
	}
	defer rows.Close()

	var assignments []entity.LocationUser
	for rows.Next() {
		a, err := scanLocationUser(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}

func (s *SQLite) GetLocationUser(ctx context.Context, id int64) (*entity.LocationUser, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, location_id, status, creation_date FROM location_users WHERE id = ?", id)
	return scanLocationUser(row)
}

func (s *SQLite) CreateLocationUser(ctx context.Context, a *entity.LocationUser) error {
	if a.CreationDate.IsZero() {
		a.CreationDate = time.Now()
	}
	if a.Status == "" {
		a.Status = entity.AssignmentActivo
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO location_users (user_id, location_id, status, creation_date) VALUES (?, ?, ?, ?)",
		a.UserId, a.LocationId, a.Status, a.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create location user: %w", err)
	}
	a.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdateLocationUser(ctx context.Context, id int64, a *entity.LocationUser) (*entity.LocationUser, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE location_users SET user_id = ?, location_id = ?, status = ? WHERE id = ?",
		a.UserId, a.LocationId, a.Status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update location user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetLocationUser(ctx, id)
}

func (s *SQLite) DeleteLocationUser(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM location_users WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete location user: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
