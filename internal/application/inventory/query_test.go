package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetstock/vetstock-api/internal/application/inventory"
	"github.com/vetstock/vetstock-api/internal/domain"
)

func newQueryFixture() (*inventory.StockQueryUseCase, *fixture) {
	f := newFixture()
	return inventory.NewStockQueryUseCase(f.stockRepo, f.products, f.practices), f
}

// Listar devuelve los registros de la práctica; consultar no modifica nada.
func TestStockQuery_List(t *testing.T) {
	query, f := newQueryFixture()
	ctx := context.Background()

	_, err := f.uc.ProcessBatch(ctx, batch(inventory.DirectionIncrease,
		inventory.BatchItem{ProductNumber: testProductNum, BatchNumber: "L-A", Quantity: 2},
		inventory.BatchItem{ProductNumber: testProductNum, BatchNumber: "L-B", Quantity: 5},
	))
	require.NoError(t, err)

	records, err := query.List(ctx, testClientID, testPracticeID)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Dos lecturas sin escrituras intermedias ven lo mismo.
	again, err := query.List(ctx, testClientID, testPracticeID)
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

// La clave exacta devuelve el registro, o STOCK_NOT_FOUND si no hay.
func TestStockQuery_GetByProductAndBatch(t *testing.T) {
	query, f := newQueryFixture()
	ctx := context.Background()

	_, err := f.uc.ProcessBatch(ctx, batch(inventory.DirectionIncrease,
		inventory.BatchItem{ProductNumber: testProductNum, BatchNumber: testBatch, Quantity: 3},
	))
	require.NoError(t, err)

	record, err := query.GetByProductAndBatch(ctx, testClientID, testPracticeID, testProductNum, testBatch)
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.Quantity)

	_, err = query.GetByProductAndBatch(ctx, testClientID, testPracticeID, testProductNum, "L-OTRO")
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	_, err = query.GetByProductAndBatch(ctx, testClientID, testPracticeID, "NO-EXISTE", testBatch)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Consultar una práctica de otro cliente está prohibido.
func TestStockQuery_PracticaDeOtroCliente(t *testing.T) {
	query, _ := newQueryFixture()

	_, err := query.List(context.Background(), "otro-cliente", testPracticeID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
