package repository

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

// PracticeRepository es el puerto de lectura de prácticas (solo lectura en este servicio).
type PracticeRepository interface {
	// GetByID devuelve la práctica, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Practice, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Practice, error)
}
