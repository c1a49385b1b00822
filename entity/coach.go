package entity

import "time"

type Coach struct {
	ID           int64     `json:"id"`
	Cedula       string    `json:"cedula" validate:"required"`
	Names        string    `json:"names" validate:"required"`
	LocationId   int64     `json:"location_id" validate:"required"`
	LocationName string    `json:"location_name,omitempty"`
	CreationDate time.Time `json:"creation_date"`
}
