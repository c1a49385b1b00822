package entity

import "time"

// Weekdays as they appear on keyboards and in stored schedules.
var Weekdays = []string{"Lunes", "Martes", "Miercoles", "Jueves", "Viernes", "Sabado", "Domingo"}

type Schedule struct {
	ID           int64     `json:"id"`
	LocationId   int64     `json:"location_id" validate:"required"`
	LocationName string    `json:"location_name,omitempty"`
	Days         string    `json:"days" validate:"required,oneof=Lunes Martes Miercoles Jueves Viernes Sabado Domingo"`
	TimeInit     string    `json:"time_init" validate:"required"`
	TimeEnd      string    `json:"time_end" validate:"required"`
	CreationDate time.Time `json:"creation_date"`
}
