package entity

import "time"

type Location struct {
	ID           int64     `json:"id"`
	Location     string    `json:"location" validate:"required"`
	Address      string    `json:"address" validate:"required"`
	CreationDate time.Time `json:"creation_date"`
}
