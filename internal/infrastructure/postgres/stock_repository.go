package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// La unicidad de (practice_id, product_id, batch_number) la garantiza el índice
// único de stock_records; ver db/schema.sql.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, practice_id, product_id, batch_number, quantity, expiry_date, created_at, updated_at`

// GetForUpdate obtiene el registro de la clave, o nil si no existe, y bloquea
// la fila (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una transacción.
func (r *StockRepo) GetForUpdate(ctx context.Context, practiceID, productID, batchNumber string) (*entity.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_records
		WHERE practice_id = $1 AND product_id = $2 AND batch_number = $3
		FOR UPDATE`
	return r.getOne(ctx, query, practiceID, productID, batchNumber)
}

func (r *StockRepo) getOne(ctx context.Context, query string, args ...any) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.PracticeID, &s.ProductID, &s.BatchNumber,
		&s.Quantity, &s.ExpiryDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// AddOrCreate suma record.Quantity al registro de la clave, creándolo si no
// existe, en una sola sentencia atómica. La fecha de vencimiento se
// sobreescribe siempre con la última recibida (last-write-wins).
// Devuelve la cantidad resultante.
func (r *StockRepo) AddOrCreate(ctx context.Context, record *entity.StockRecord) (int64, error) {
	query := `
		INSERT INTO stock_records (id, practice_id, product_id, batch_number, quantity, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (practice_id, product_id, batch_number)
		DO UPDATE SET quantity = stock_records.quantity + EXCLUDED.quantity,
		              expiry_date = EXCLUDED.expiry_date,
		              updated_at = now()
		RETURNING quantity`
	var quantity int64
	err := r.q.QueryRow(ctx, query,
		record.ID, record.PracticeID, record.ProductID, record.BatchNumber,
		record.Quantity, record.ExpiryDate,
	).Scan(&quantity)
	if err != nil {
		return 0, fmt.Errorf("add or create stock record: %w", err)
	}
	return quantity, nil
}

// UpdateQuantity fija la cantidad de un registro existente.
func (r *StockRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_records SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// Delete elimina el registro por ID.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock record: %w", err)
	}
	return nil
}

// ListWithProduct lista los registros de una práctica unidos con el producto
// (la vista de stock por práctica). productID y batchNumber vacíos no filtran.
func (r *StockRepo) ListWithProduct(ctx context.Context, practiceID, productID, batchNumber string) ([]*entity.StockWithProduct, error) {
	query := `
		SELECT s.id, s.practice_id, s.product_id, s.batch_number, s.quantity, s.expiry_date, s.created_at, s.updated_at,
		       p.product_number, p.primary_name, p.secondary_name, p.no_barcode
		FROM stock_records s
		JOIN products p ON p.id = s.product_id
		WHERE s.practice_id = $1`
	args := []any{practiceID}
	if productID != "" {
		args = append(args, productID)
		query += fmt.Sprintf(" AND s.product_id = $%d", len(args))
	}
	if batchNumber != "" {
		args = append(args, batchNumber)
		query += fmt.Sprintf(" AND s.batch_number = $%d", len(args))
	}
	query += " ORDER BY p.primary_name, s.batch_number"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockWithProduct
	for rows.Next() {
		var s entity.StockWithProduct
		if err := rows.Scan(
			&s.ID, &s.PracticeID, &s.ProductID, &s.BatchNumber,
			&s.Quantity, &s.ExpiryDate, &s.CreatedAt, &s.UpdatedAt,
			&s.ProductNumber, &s.PrimaryName, &s.SecondaryName, &s.NoBarcode,
		); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ExistsForProduct indica si algún registro vivo referencia el producto.
func (r *StockRepo) ExistsForProduct(ctx context.Context, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM stock_records WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("stock exists for product: %w", err)
	}
	return exists, nil
}
