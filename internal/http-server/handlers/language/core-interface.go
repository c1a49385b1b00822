package language

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"
)

type Core interface {
	GetLanguage(ctx context.Context, telegramId int64) (*entity.Language, error)
	SetLanguage(ctx context.Context, telegramId int64, lang string) error
}
