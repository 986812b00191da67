package repository

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

// ProductRepository es el puerto de persistencia del catálogo de productos.
// GetByNumber cumple además el rol de resolver: número de producto → producto.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByNumber devuelve el producto por su número, o nil si no está registrado.
	GetByNumber(ctx context.Context, productNumber string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, productNumber string) error
}
