package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

const paymentColumns = "id, user_id, date, amount, reference, payment_method_id, proof_path, year, month, creation_date"

func scanPayment(row interface{ Scan(...any) error }) (*entity.Payment, error) {
	var p entity.Payment
	var reference, proof sql.NullString
	var created int64
	err := row.Scan(&p.ID, &p.UserId, &p.Date, &p.Amount, &reference,
		&p.PaymentMethodId, &proof, &p.Year, &p.Month, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	p.Reference = reference.String
	p.ProofPath = proof.String
	p.CreationDate = time.Unix(created, 0)
	return &p, nil
}

func (s *SQLite) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+paymentColumns+" FROM payments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (s *SQLite) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)
	return scanPayment(row)
}

func (s *SQLite) CreatePayment(ctx context.Context, p *entity.Payment) error {
	if p.CreationDate.IsZero() {
		p.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (user_id, date, amount, reference, payment_method_id, proof_path, year, month, creation_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserId, p.Date, p.Amount, nullable(p.Reference), p.PaymentMethodId,
		nullable(p.ProofPath), p.Year, p.Month, p.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (s *SQLite) UpdatePayment(ctx context.Context, id int64, p *entity.Payment) (*entity.Payment, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE payments SET user_id = ?, date = ?, amount = ?, reference = ?,
			payment_method_id = ?, year = ?, month = ?
		WHERE id = ?`,
		p.UserId, p.Date, p.Amount, nullable(p.Reference), p.PaymentMethodId, p.Year, p.Month, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetPayment(ctx, id)
}

func (s *SQLite) DeletePayment(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
