package repository

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

// UserRepository es el puerto de lectura de usuarios para autenticación.
type UserRepository interface {
	// FindByEmail devuelve el usuario por email, o nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
