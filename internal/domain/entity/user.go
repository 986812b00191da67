package entity

import "time"

// User es un usuario de un cliente. Las credenciales se verifican localmente
// (bcrypt); el resto del perfil vive fuera de este servicio.
type User struct {
	ID           string
	ClientID     string
	Email        string
	PasswordHash string
	Name         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
