package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

const coachColumns = `c.id, c.cedula, c.names, c.location_id, COALESCE(l.location, ''), c.creation_date
	FROM coaches c LEFT JOIN locations l ON l.id = c.location_id`

func scanCoach(row interface{ Scan(...any) error }) (*entity.Coach, error) {
	var c entity.Coach
	var created int64
	err := row.Scan(&c.ID, &c.Cedula, &c.Names, &c.LocationId, &c.LocationName, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan coach: %w", err)
	}
	c.CreationDate = time.Unix(created, 0)
	return &c, nil
}

func (s *SQLite) ListCoaches(ctx context.Context) ([]entity.Coach, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+coachColumns+" ORDER BY c.id")
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer rows.Close()

	var coaches []entity.Coach
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		coaches = append(coaches, *c)
	}
	return coaches, rows.Err()
}

func (s *SQLite) GetCoach(ctx context.Context, id int64) (*entity.Coach, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+coachColumns+" WHERE c.id = ?", id)
	return scanCoach(row)
}

func (s *SQLite) CreateCoach(ctx context.Context, c *entity.Coach) error {
	if c.CreationDate.IsZero() {
		c.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO coaches (cedula, names, location_id, creation_date) VALUES (?, ?, ?, ?)",
		c.Cedula, c.Names, c.LocationId, c.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create coach: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdateCoach(ctx context.Context, id int64, names string, locationId int64) (*entity.Coach, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE coaches SET names = ?, location_id = ? WHERE id = ?",
		names, locationId, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update coach: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetCoach(ctx, id)
}

func (s *SQLite) DeleteCoach(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM coaches WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete coach: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
