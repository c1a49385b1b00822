package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dvconsultores/rhino-bot/entity"
)

// GetLanguage returns the stored language preference for a chat, or nil when
// none has been set.
func (s *SQLite) GetLanguage(ctx context.Context, telegramId int64) (*entity.Language, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, telegram_id, language, creation_date FROM languages WHERE telegram_id = ?", telegramId)

	var l entity.Language
	var created int64
	err := row.Scan(&l.ID, &l.TelegramId, &l.Language, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan language: %w", err)
	}
	l.CreationDate = time.Unix(created, 0)
	return &l, nil
}

// SetLanguage upserts the language preference for a chat.
func (s *SQLite) SetLanguage(ctx context.Context, telegramId int64, lang string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO languages (telegram_id, language, creation_date) VALUES (?, ?, ?)
		ON CONFLICT(telegram_id) DO UPDATE SET language = excluded.language`,
		telegramId, lang, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}
