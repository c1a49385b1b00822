package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

func scanLocation(row interface{ Scan(...any) error }) (*entity.Location, error) {
	var l entity.Location
	var created int64
	err := row.Scan(&l.ID, &l.Location, &l.Address, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}
	l.CreationDate = time.Unix(created, 0)
	return &l, nil
}

func (s *SQLite) ListLocations(ctx context.Context) ([]entity.Location, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, location, address, creation_date FROM locations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *l)
	}
	return locations, rows.Err()
}

func (s *SQLite) GetLocation(ctx context.Context, id int64) (*entity.Location, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, location, address, creation_date FROM locations WHERE id = ?", id)
	return scanLocation(row)
}

func (s *SQLite) CreateLocation(ctx context.Context, l *entity.Location) error {
	if l.CreationDate.IsZero() {
		l.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO locations (location, address, creation_date) VALUES (?, ?, ?)",
		l.Location, l.Address, l.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	l.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdateLocation(ctx context.Context, id int64, name, address string) (*entity.Location, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE locations SET location = ?, address = ? WHERE id = ?",
		name, address, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetLocation(ctx, id)
}

func (s *SQLite) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete location: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
