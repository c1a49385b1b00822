package payment

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListPayments(ctx context.Context) ([]entity.Payment, error)
	GetPayment(ctx context.Context, id int64) (*entity.Payment, error)
	CreatePayment(ctx context.Context, p *entity.Payment) error
	UpdatePayment(ctx context.Context, id int64, p *entity.Payment) (*entity.Payment, error)
	DeletePayment(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
