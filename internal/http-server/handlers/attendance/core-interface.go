package attendance

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListAttendances(ctx context.Context) ([]entity.Attendance, error)
	GetAttendance(ctx context.Context, id int64) (*entity.Attendance, error)
	CreateAttendance(ctx context.Context, a *entity.Attendance) error
	UpdateAttendance(ctx context.Context, id int64, a *entity.Attendance) (*entity.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
