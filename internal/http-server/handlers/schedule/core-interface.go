package schedule

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListSchedules(ctx context.Context) ([]entity.Schedule, error)
	GetSchedule(ctx context.Context, id int64) (*entity.Schedule, error)
	CreateSchedule(ctx context.Context, sc *entity.Schedule) error
	UpdateSchedule(ctx context.Context, id int64, sc *entity.Schedule) (*entity.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
