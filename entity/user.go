package entity

import "time"

const (
	UserTypeCliente        = "cliente"
	UserTypeCoach          = "coach"
	UserTypeAdministrativo = "administrativo"
	UserTypeOwner          = "owner"
)

const (
	UserStatusActivo   = "activo"
	UserStatusInactivo = "inactivo"
	UserStatusMoroso   = "moroso"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Lastname     string    `json:"lastname" validate:"required"`
	Cedula       int64     `json:"cedula" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	DateOfBirth  string    `json:"date_of_birth" validate:"required"`
	Phone        int64     `json:"phone" validate:"required"`
	Instagram    string    `json:"instagram,omitempty"`
	Type         string    `json:"type" validate:"required,oneof=cliente coach administrativo owner"`
	Status       string    `json:"status" validate:"required,oneof=activo inactivo moroso"`
	TelegramId   int64     `json:"telegram_id" validate:"required"`
	CreationDate time.Time `json:"creation_date"`
}

// NewUser creates a client user with the defaults the bot registration applies.
func NewUser(telegramId int64) *User {
	return &User{
		Type:         UserTypeCliente,
		Status:       UserStatusActivo,
		TelegramId:   telegramId,
		CreationDate: time.Now(),
	}
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActivo
}

func (u *User) IsStaff() bool {
	return u.Type == UserTypeAdministrativo || u.Type == UserTypeOwner
}
