package inventory

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de stock atado a esa tx. Garantiza que la secuencia
// leer-decidir-escribir del motor de conciliación sea atómica por clave:
// GetForUpdate bloquea la fila hasta el Commit/Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}
