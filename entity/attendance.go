package entity

import "time"

type Attendance struct {
	ID           int64     `json:"id"`
	CoachId      int64     `json:"coach_id" validate:"required"`
	CoachName    string    `json:"coach_name,omitempty"`
	LocationId   int64     `json:"location_id" validate:"required"`
	LocationName string    `json:"location_name,omitempty"`
	UserId       int64     `json:"user_id" validate:"required"`
	UserName     string    `json:"user_name,omitempty"`
	Date         time.Time `json:"date"`
	CreationDate time.Time `json:"creation_date"`
}
