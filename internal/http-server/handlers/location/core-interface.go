package location

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListLocations(ctx context.Context) ([]entity.Location, error)
	GetLocation(ctx context.Context, id int64) (*entity.Location, error)
	CreateLocation(ctx context.Context, l *entity.Location) error
	UpdateLocation(ctx context.Context, id int64, name, address string) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
