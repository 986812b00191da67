package repository

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

// StockRepository es el puerto de acceso a los registros de stock por lote.
// La clave (practiceID, productID, batchNumber) es única entre registros vivos.
//
// AddOrCreate debe ser atómico a nivel de almacén (increment-or-create sobre la
// clave única); GetForUpdate debe bloquear la fila hasta el fin de la
// transacción. Juntas, las dos operaciones cierran la ventana de carrera
// lectura-decisión-escritura del motor de conciliación.
type StockRepository interface {
	// GetForUpdate devuelve el registro de la clave con bloqueo de fila
	// (SELECT ... FOR UPDATE), o nil si no existe (ausencia no es error).
	// Solo dentro de una transacción.
	GetForUpdate(ctx context.Context, practiceID, productID, batchNumber string) (*entity.StockRecord, error)
	// AddOrCreate suma record.Quantity al registro de la clave, creándolo si no
	// existe, y sobreescribe la fecha de vencimiento con la del registro.
	// Devuelve la cantidad resultante.
	AddOrCreate(ctx context.Context, record *entity.StockRecord) (int64, error)
	// UpdateQuantity fija la cantidad de un registro existente.
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	// Delete elimina el registro por ID.
	Delete(ctx context.Context, id string) error
	// ListWithProduct lista los registros de una práctica unidos con el producto.
	// productID y batchNumber vacíos no filtran.
	ListWithProduct(ctx context.Context, practiceID, productID, batchNumber string) ([]*entity.StockWithProduct, error)
	// ExistsForProduct indica si algún registro vivo referencia el producto.
	ExistsForProduct(ctx context.Context, productID string) (bool, error)
}
