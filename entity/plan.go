package entity

import "time"

type Plan struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Price        float64   `json:"price" validate:"required,gt=0"`
	CreationDate time.Time `json:"creation_date"`
}
