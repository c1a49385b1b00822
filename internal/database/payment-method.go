package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

func scanPaymentMethod(row interface{ Scan(...any) error }) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	var created int64
	err := row.Scan(&m.ID, &m.Method, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment method: %w", err)
	}
	m.CreationDate = time.Unix(created, 0)
	return &m, nil
}

func (s *SQLite) ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, method, creation_date FROM payment_methods ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	var methods []entity.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, err
		}
		methods = append(methods, *m)
	}
	return methods, rows.Err()
}

func (s *SQLite) GetPaymentMethod(ctx context.Context, id int64) (*entity.PaymentMethod, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, method, creation_date FROM payment_methods WHERE id = ?", id)
	return scanPaymentMethod(row)
}

func (s *SQLite) CreatePaymentMethod(ctx context.Context, m *entity.PaymentMethod) error {
	if m.CreationDate.IsZero() {
		m.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payment_methods (method, creation_date) VALUES (?, ?)",
		m.Method, m.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create payment method: %w", err)
	}
	m.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdatePaymentMethod(ctx context.Context, id int64, method string) (*entity.PaymentMethod, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE payment_methods SET method = ? WHERE id = ?", method, id)
	if err != nil {
		return nil, fmt.Errorf("update payment method: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetPaymentMethod(ctx, id)
}

func (s *SQLite) DeletePaymentMethod(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payment_methods WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete payment method: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
