package entity

import "time"

type PaymentMethod struct {
	ID           int64     `json:"id"`
	Method       string    `json:"method" validate:"required"`
	CreationDate time.Time `json:"creation_date"`
}
