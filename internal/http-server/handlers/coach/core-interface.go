package coach

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListCoaches(ctx context.Context) ([]entity.Coach, error)
	GetCoach(ctx context.Context, id int64) (*entity.Coach, error)
	CreateCoach(ctx context.Context, c *entity.Coach) error
	UpdateCoach(ctx context.Context, id int64, names string, locationId int64) (*entity.Coach, error)
	DeleteCoach(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
