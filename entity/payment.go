package entity

import "time"

type Payment struct {
	ID              int64     `json:"id"`
	UserId          int64     `json:"user_id" validate:"required"`
	Date            string    `json:"date" validate:"required"`
	Amount          float64   `json:"amount" validate:"required,gt=0"`
	Reference       string    `json:"reference,omitempty"`
	PaymentMethodId int64     `json:"payment_method_id" validate:"required"`
	ProofPath       string    `json:"proof_path,omitempty"`
	Year            int       `json:"year" validate:"required"`
	Month           int       `json:"month" validate:"required,min=1,max=12"`
	CreationDate    time.Time `json:"creation_date"`
}

// NewPayment stamps a payment with today's accounting period.
func NewPayment(userId int64, amount float64) *Payment {
	now := time.Now()
	return &Payment{
		UserId:       userId,
		Date:         now.Format("2006-01-02"),
		Amount:       amount,
		Year:         now.Year(),
		Month:        int(now.Month()),
		CreationDate: now,
	}
}
