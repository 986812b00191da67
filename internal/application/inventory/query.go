package inventory

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

// StockQueryUseCase consulta el stock actual de una práctica (solo lectura,
// fuera de transacción: dos lecturas sin escrituras intermedias ven lo mismo).
type StockQueryUseCase struct {
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	practiceRepo repository.PracticeRepository
}

// NewStockQueryUseCase construye el caso de uso de consulta.
func NewStockQueryUseCase(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	practiceRepo repository.PracticeRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{stockRepo: stockRepo, productRepo: productRepo, practiceRepo: practiceRepo}
}

// List devuelve todos los registros de stock de la práctica, unidos con los
// datos de presentación del producto.
func (uc *StockQueryUseCase) List(ctx context.Context, clientID, practiceID string) ([]*entity.StockWithProduct, error) {
	if practiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPractice(ctx, clientID, practiceID); err != nil {
		return nil, err
	}
	return uc.stockRepo.ListWithProduct(ctx, practiceID, "", "")
}

// GetByProductAndBatch devuelve el registro de la clave exacta
// (práctica, número de producto, lote).
func (uc *StockQueryUseCase) GetByProductAndBatch(ctx context.Context, clientID, practiceID, productNumber, batchNumber string) (*entity.StockWithProduct, error) {
	if practiceID == "" || productNumber == "" || batchNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPractice(ctx, clientID, practiceID); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByNumber(ctx, productNumber)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	records, err := uc.stockRepo.ListWithProduct(ctx, practiceID, product.ID, batchNumber)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrStockNotFound
	}
	return records[0], nil
}

// checkPractice verifica existencia y pertenencia de la práctica al cliente del token.
func (uc *StockQueryUseCase) checkPractice(ctx context.Context, clientID, practiceID string) error {
	practice, err := uc.practiceRepo.GetByID(ctx, practiceID)
	if err != nil {
		return err
	}
	if practice == nil {
		return domain.ErrNotFound
	}
	if clientID != "" && practice.ClientID != clientID {
		return domain.ErrForbidden
	}
	return nil
}
