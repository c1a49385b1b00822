package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

func scanPlan(row interface{ Scan(...any) error }) (*entity.Plan, error) {
	var p entity.Plan
	var created int64
	err := row.Scan(&p.ID, &p.Name, &p.Price, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}
	p.CreationDate = time.Unix(created, 0)
	return &p, nil
}

func (s *SQLite) ListPlans(ctx context.Context) ([]entity.Plan, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, price, creation_date FROM plans ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []entity.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

func (s *SQLite) GetPlan(ctx context.Context, id int64) (*entity.Plan, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, price, creation_date FROM plans WHERE id = ?", id)
	return scanPlan(row)
}

func (s *SQLite) CreatePlan(ctx context.Context, p *entity.Plan) error {
	if p.CreationDate.IsZero() {
		p.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO plans (name, price, creation_date) VALUES (?, ?, ?)",
		p.Name, p.Price, p.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdatePlan(ctx context.Context, id int64, name string, price float64) (*entity.Plan, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE plans SET name = ?, price = ? WHERE id = ?",
		name, price, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetPlan(ctx, id)
}

func (s *SQLite) DeletePlan(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete plan: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
