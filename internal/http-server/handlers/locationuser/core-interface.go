package locationuser

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListLocationUsers(ctx context.Context) ([]entity.LocationUser, error)
	GetLocationUser(ctx context.Context, id int64) (*entity.LocationUser, error)
	CreateLocationUser(ctx context.Context, a *entity.LocationUser) error
	UpdateLocationUser(ctx context.Context, id int64, a *entity.LocationUser) (*entity.LocationUser, error)
	DeleteLocationUser(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
