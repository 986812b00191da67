package entity

import "time"

// Practice es una sede (práctica) de un cliente. Desde el motor de inventario
// es solo lectura: el alta y edición de prácticas ocurre en otro sistema.
type Practice struct {
	ID        string
	ClientID  string
	Name      string
	Address   *string
	Phone     *string
	Email     *string
	CreatedAt time.Time
}
