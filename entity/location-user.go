package entity

import "time"

const (
	AssignmentActivo   = "Activo"
	AssignmentInactivo = "Inactivo"
)

// LocationUser links a user to the location they train at.
type LocationUser struct {
	ID           int64     `json:"id"`
	UserId       int64     `json:"user_id" validate:"required"`
	LocationId   int64     `json:"location_id" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=Activo Inactivo"`
	CreationDate time.Time `json:"creation_date"`
}
