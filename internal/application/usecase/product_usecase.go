package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos.
// El número de producto es inmutable; el borrado se rechaza mientras exista
// stock que referencie el producto.
type ProductUseCase struct {
	repo      repository.ProductRepository
	stockRepo repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, stockRepo: stockRepo}
}

// Create registra un producto nuevo. ErrDuplicate si el número ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByNumber(ctx, in.ProductNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		ProductNumber: in.ProductNumber,
		PrimaryName:   in.PrimaryName,
		SecondaryName: in.SecondaryName,
		Image:         in.Image,
		NoBarcode:     in.NoBarcode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByNumber obtiene un producto por su número; nil si no existe.
func (uc *ProductUseCase) GetByNumber(ctx context.Context, productNumber string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByNumber(ctx, productNumber)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes; los nil se conservan.
func (uc *ProductUseCase) Update(ctx context.Context, productNumber string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByNumber(ctx, productNumber)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.PrimaryName != nil {
		product.PrimaryName = *in.PrimaryName
	}
	if in.SecondaryName != nil {
		product.SecondaryName = in.SecondaryName
	}
	if in.Image != nil {
		product.Image = in.Image
	}
	if in.NoBarcode != nil {
		product.NoBarcode = *in.NoBarcode
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por número. ErrConflict si hay stock vivo que lo
// referencia: borrarlo dejaría registros de stock huérfanos.
func (uc *ProductUseCase) Delete(ctx context.Context, productNumber string) error {
	product, err := uc.repo.GetByNumber(ctx, productNumber)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	referenced, err := uc.stockRepo.ExistsForProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, productNumber)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		ProductNumber: p.ProductNumber,
		PrimaryName:   p.PrimaryName,
		SecondaryName: p.SecondaryName,
		Image:         p.Image,
		NoBarcode:     p.NoBarcode,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
