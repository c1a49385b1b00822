package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

const userColumns = "id, name, lastname, cedula, email, date_of_birth, phone, instagram, type, status, telegram_id, creation_date"

func scanUser(row interface{ Scan(...any) error }) (*entity.User, error) {
	var u entity.User
	var instagram sql.NullString
	var created int64
	err := row.Scan(&u.ID, &u.Name, &u.Lastname, &u.Cedula, &u.Email, &u.DateOfBirth,
		&u.Phone, &instagram, &u.Type, &u.Status, &u.TelegramId, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Instagram = instagram.String
	u.CreationDate = time.Unix(created, 0)
	return &u, nil
}

func (s *SQLite) ListUsers(ctx context.Context) ([]entity.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *SQLite) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

func (s *SQLite) GetUserByTelegramId(ctx context.Context, telegramId int64) (*entity.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE telegram_id = ?", telegramId)
	return scanUser(row)
}

func (s *SQLite) CreateUser(ctx context.Context, u *entity.User) error {
	if u.CreationDate.IsZero() {
		u.CreationDate = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (name, lastname, cedula, email, date_of_birth, phone, instagram, type, status, telegram_id, creation_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Lastname, u.Cedula, u.Email, u.DateOfBirth, u.Phone,
		nullable(u.Instagram), u.Type, u.Status, u.TelegramId, u.CreationDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	u.ID, err = res.LastInsertId()
	return err
}

// UpdateUserByTelegramId rewrites a user's editable fields, keyed by the
// Telegram id the bot knows the user by.
func (s *SQLite) UpdateUserByTelegramId(ctx context.Context, telegramId int64, u *entity.User) (*entity.User, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET name = ?, lastname = ?, cedula = ?, email = ?, date_of_birth = ?,
			phone = ?, instagram = ?, type = ?, status = ?
		WHERE telegram_id = ?`,
		u.Name, u.Lastname, u.Cedula, u.Email, u.DateOfBirth,
		u.Phone, nullable(u.Instagram), u.Type, u.Status, telegramId,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.GetUserByTelegramId(ctx, telegramId)
}

func (s *SQLite) DeleteUser(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
