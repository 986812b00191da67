package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, product_number, primary_name, secondary_name, image, no_barcode, created_at, updated_at`

// Create persiste un producto nuevo. ErrDuplicate si el número ya existe.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_number, primary_name, secondary_name, image, no_barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.ProductNumber, product.PrimaryName, product.SecondaryName,
		product.Image, product.NoBarcode, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByNumber obtiene un producto por su número, o nil si no está registrado.
func (r *ProductRepo) GetByNumber(ctx context.Context, productNumber string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_number = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, productNumber).Scan(
		&p.ID, &p.ProductNumber, &p.PrimaryName, &p.SecondaryName,
		&p.Image, &p.NoBarcode, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. El número de producto no se toca.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET primary_name = $2, secondary_name = $3, image = $4, no_barcode = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.PrimaryName, product.SecondaryName,
		product.Image, product.NoBarcode, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por número.
func (r *ProductRepo) Delete(ctx context.Context, productNumber string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE product_number = $1`, productNumber)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
