package paymethod

import (
	"context"

	"github.com/dvconsultores/rhino-bot/entity"

	"github.com/go-playground/validator/v10"
)

type Core interface {
	ListPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, id int64) (*entity.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, m *entity.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, id int64, method string) (*entity.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id int64) (bool, error)
}

var validate = validator.New()
