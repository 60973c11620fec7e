package entity

import "time"

// Advisor representa un asesor comercial que emite cotizaciones.
type Advisor struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
