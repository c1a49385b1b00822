package plan

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListPlans(ctx context.Context) ([]entity.Plan, error)
	GetPlan(ctx context.Context, id int64) (*entity.Plan, error)
	CreatePlan(ctx context.Context, p *entity.Plan) error
	UpdatePlan(ctx context.Context, id int64, name string, price float64) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
