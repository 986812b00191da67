package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

// Direction indica el sentido del lote de operaciones.
type Direction string

const (
	DirectionIncrease Direction = "increase" // entrada de stock (recepción)
	DirectionDecrease Direction = "decrease" // salida de stock (consumo)
)

// Estados posibles del resultado de conciliar una línea.
const (
	StatusCreated  = "created"
	StatusUpdated  = "updated"
	StatusDeleted  = "deleted"
	StatusRejected = "rejected"
)

// BatchItem es una línea del lote: producto + lote físico + cantidad.
// Quantity en 0 significa "no especificada" y toma el valor por defecto.
type BatchItem struct {
	ProductNumber string
	BatchNumber   string
	ExpiryDate    *time.Time // solo tiene sentido en entradas
	Quantity      int64
}

// BatchInput es la entrada del orquestador de lotes. ClientID y ActorID vienen
// del token del llamador (identidad explícita, no ambiente).
type BatchInput struct {
	PracticeID string
	ClientID   string
	ActorID    string
	Direction  Direction
	Items      []BatchItem
}

// ItemOutcome describe qué pasó con una línea: created/updated/deleted, o
// rejected con el código de error. Quantity es la cantidad resultante
// (0 si el registro fue eliminado).
type ItemOutcome struct {
	ProductNumber string
	BatchNumber   string
	ProductID     string
	Status        string
	Quantity      int64
	ErrorCode     string
	ErrorMessage  string
}

// BatchResult agrega los resultados de todas las líneas de un lote.
// El lote se considera procesado aunque haya líneas fallidas; cada línea
// reporta su propio resultado.
type BatchResult struct {
	Processed int
	Succeeded int
	Failed    int
	Items     []ItemOutcome
}

// ReconcileUseCase es el motor de conciliación de stock: decide crear,
// actualizar o eliminar el registro de la clave (práctica, producto, lote)
// según el delta solicitado, y procesa lotes de líneas tolerando fallos por
// línea.
//
// Cada línea se concilia en su propia transacción: una línea fallida nunca
// aborta a sus hermanas, y reenviar un lote ya aplicado lo vuelve a aplicar
// (no hay token de idempotencia).
type ReconcileUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	practiceRepo repository.PracticeRepository
	log          zerolog.Logger
	opTimeout    time.Duration
	defaultQty   int64
}

// NewReconcileUseCase construye el motor. opTimeout acota cada operación de
// almacén por línea; defaultQty es la cantidad cuando la línea no la trae.
func NewReconcileUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	practiceRepo repository.PracticeRepository,
	log zerolog.Logger,
	opTimeout time.Duration,
	defaultQty int64,
) *ReconcileUseCase {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	if defaultQty <= 0 {
		defaultQty = 1
	}
	return &ReconcileUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		practiceRepo: practiceRepo,
		log:          log,
		opTimeout:    opTimeout,
		defaultQty:   defaultQty,
	}
}

// ProcessBatch valida el lote, verifica que la práctica pertenezca al cliente
// del token y concilia cada línea en orden. Devuelve error solo por fallos de
// todo el lote (validación, práctica inexistente o ajena); los fallos por
// línea quedan en el resultado.
func (uc *ReconcileUseCase) ProcessBatch(ctx context.Context, input BatchInput) (*BatchResult, error) {
	if input.PracticeID == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Direction != DirectionIncrease && input.Direction != DirectionDecrease {
		return nil, domain.ErrInvalidInput
	}

	practice, err := uc.practiceRepo.GetByID(ctx, input.PracticeID)
	if err != nil {
		return nil, err
	}
	if practice == nil {
		return nil, domain.ErrNotFound
	}
	if input.ClientID != "" && practice.ClientID != input.ClientID {
		return nil, domain.ErrForbidden
	}

	result := &BatchResult{Items: make([]ItemOutcome, 0, len(input.Items))}
	for _, item := range input.Items {
		outcome := uc.reconcileItem(ctx, input.PracticeID, input.Direction, item)
		result.Processed++
		if outcome.Status == StatusRejected {
			result.Failed++
			uc.log.Warn().
				Str("practice_id", input.PracticeID).
				Str("actor_id", input.ActorID).
				Str("product_number", item.ProductNumber).
				Str("batch_number", item.BatchNumber).
				Str("code", outcome.ErrorCode).
				Msg("línea de lote rechazada")
		} else {
			result.Succeeded++
		}
		result.Items = append(result.Items, outcome)
	}
	return result, nil
}

// reconcileItem resuelve el producto y concilia una línea bajo su propio
// timeout y su propia transacción. Todo fallo se traduce a un outcome
// rechazado; nunca propaga error al resto del lote.
func (uc *ReconcileUseCase) reconcileItem(ctx context.Context, practiceID string, direction Direction, item BatchItem) ItemOutcome {
	outcome := ItemOutcome{
		ProductNumber: item.ProductNumber,
		BatchNumber:   item.BatchNumber,
	}

	qty := item.Quantity
	if qty == 0 {
		qty = uc.defaultQty
	}
	if item.ProductNumber == "" || item.BatchNumber == "" || qty < 0 {
		return rejected(outcome, domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.opTimeout)
	defer cancel()

	// Resolver el producto antes de tocar stock: si el número no está
	// registrado la línea se corta aquí.
	product, err := uc.productRepo.GetByNumber(ctx, item.ProductNumber)
	if err != nil {
		return rejected(outcome, err)
	}
	if product == nil {
		return rejected(outcome, domain.ErrProductNotFound)
	}
	outcome.ProductID = product.ID

	delta := qty
	if direction == DirectionDecrease {
		delta = -qty
	}

	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		status, newQty, err := uc.reconcile(ctx, stockRepo, practiceID, product.ID, item, delta)
		if err != nil {
			return err
		}
		outcome.Status = status
		outcome.Quantity = newQty
		return nil
	})
	if err != nil {
		return rejected(outcome, err)
	}
	return outcome
}

// reconcile aplica la decisión crear/actualizar/eliminar para un delta sobre
// la clave (práctica, producto, lote). Se ejecuta dentro de una transacción.
//
//   - delta > 0: upsert atómico increment-or-create sobre la clave única.
//     Si la cantidad resultante es igual al delta, el registro no existía y
//     fue creado (un registro vivo siempre tiene cantidad > 0).
//   - delta <= 0 sin registro: ErrStockNotFound (no se consume lo nunca recibido).
//   - delta <= 0 con registro: si la nueva cantidad queda en cero o menos, el
//     registro se elimina; nunca se persiste una cantidad <= 0.
func (uc *ReconcileUseCase) reconcile(
	ctx context.Context,
	stockRepo repository.StockRepository,
	practiceID, productID string,
	item BatchItem,
	delta int64,
) (status string, newQty int64, err error) {
	if delta > 0 {
		record := &entity.StockRecord{
			ID:          uuid.New().String(),
			PracticeID:  practiceID,
			ProductID:   productID,
			BatchNumber: item.BatchNumber,
			Quantity:    delta,
			ExpiryDate:  item.ExpiryDate,
		}
		newQty, err = stockRepo.AddOrCreate(ctx, record)
		if err != nil {
			return "", 0, err
		}
		if newQty == delta {
			return StatusCreated, newQty, nil
		}
		return StatusUpdated, newQty, nil
	}

	existing, err := stockRepo.GetForUpdate(ctx, practiceID, productID, item.BatchNumber)
	if err != nil {
		return "", 0, err
	}
	if existing == nil {
		return "", 0, domain.ErrStockNotFound
	}
	newQty = existing.Quantity + delta
	if newQty <= 0 {
		// Consumir hasta cero (o pedir más de lo que hay) elimina el registro.
		if err := stockRepo.Delete(ctx, existing.ID); err != nil {
			return "", 0, err
		}
		return StatusDeleted, 0, nil
	}
	if err := stockRepo.UpdateQuantity(ctx, existing.ID, newQty); err != nil {
		return "", 0, err
	}
	return StatusUpdated, newQty, nil
}

// rejected completa un outcome con el código y mensaje del error.
func rejected(outcome ItemOutcome, err error) ItemOutcome {
	outcome.Status = StatusRejected
	outcome.Quantity = 0
	outcome.ErrorCode = errorCode(err)
	outcome.ErrorMessage = err.Error()
	return outcome
}

// errorCode mapea errores de dominio e infraestructura a códigos estables por línea.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "PRODUCT_NOT_FOUND"
	case errors.Is(err, domain.ErrStockNotFound):
		return "STOCK_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, context.DeadlineExceeded):
		return "STORE_TIMEOUT"
	default:
		return "STORE_ERROR"
	}
}
