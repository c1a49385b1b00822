package user

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByTelegramId(ctx context.Context, telegramId int64) (*entity.User, error)
	CreateUser(ctx context.Context, u *entity.User) error
	UpdateUserByTelegramId(ctx context.Context, telegramId int64, u *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
