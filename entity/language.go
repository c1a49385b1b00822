package entity

import "time"

const (
	LangSpanish = "es"
	LangEnglish = "en"
)

// Language is a per-chat language preference.
type Language struct {
	ID           int64     `json:"id"`
	TelegramId   int64     `json:"id_telegram" validate:"required"`
	Language     string    `json:"language" validate:"required,oneof=es en"`
	CreationDate time.Time `json:"creation_date"`
}
