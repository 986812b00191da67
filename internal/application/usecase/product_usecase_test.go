package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/application/usecase"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

type memProductRepo struct {
	byNumber map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byNumber: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byNumber[p.ProductNumber] = p
	return nil
}

func (r *memProductRepo) GetByNumber(_ context.Context, productNumber string) (*entity.Product, error) {
	return r.byNumber[productNumber], nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.byNumber[p.ProductNumber] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, productNumber string) error {
	delete(r.byNumber, productNumber)
	return nil
}

// stubStockRepo solo responde ExistsForProduct; el resto no se usa en estos tests.
type stubStockRepo struct {
	referenced map[string]bool
}

func (s *stubStockRepo) GetForUpdate(context.Context, string, string, string) (*entity.StockRecord, error) {
	return nil, nil
}

func (s *stubStockRepo) AddOrCreate(context.Context, *entity.StockRecord) (int64, error) {
	return 0, nil
}

func (s *stubStockRepo) UpdateQuantity(context.Context, string, int64) error { return nil }

func (s *stubStockRepo) Delete(context.Context, string) error { return nil }

func (s *stubStockRepo) ListWithProduct(context.Context, string, string, string) ([]*entity.StockWithProduct, error) {
	return nil, nil
}

func (s *stubStockRepo) ExistsForProduct(_ context.Context, productID string) (bool, error) {
	return s.referenced[productID], nil
}

func newProductUC() (*usecase.ProductUseCase, *memProductRepo, *stubStockRepo) {
	repo := newMemProductRepo()
	stock := &stubStockRepo{referenced: make(map[string]bool)}
	return usecase.NewProductUseCase(repo, stock), repo, stock
}

// Crear y leer un producto por número.
func TestProductUseCase_CreateYGet(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		ProductNumber: "VET-001",
		PrimaryName:   "Amoxicilina 250mg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := uc.GetByNumber(ctx, "VET-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Amoxicilina 250mg", got.PrimaryName)
}

// Crear con un número ya registrado falla con ErrDuplicate.
func TestProductUseCase_CreateDuplicado(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductNumber: "VET-001", PrimaryName: "A"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{ProductNumber: "VET-001", PrimaryName: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update solo toca los campos presentes; los nil se conservan.
func TestProductUseCase_UpdateParcial(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()

	secondary := "Antibiótico"
	_, err := uc.Create(ctx, dto.CreateProductRequest{
		ProductNumber: "VET-001",
		PrimaryName:   "Amoxicilina 250mg",
		SecondaryName: &secondary,
	})
	require.NoError(t, err)

	newName := "Amoxicilina 500mg"
	updated, err := uc.Update(ctx, "VET-001", dto.UpdateProductRequest{PrimaryName: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.PrimaryName)
	require.NotNil(t, updated.SecondaryName)
	assert.Equal(t, secondary, *updated.SecondaryName, "los campos no enviados se conservan")
}

// Update de un producto inexistente devuelve nil sin error.
func TestProductUseCase_UpdateInexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	name := "X"
	updated, err := uc.Update(context.Background(), "NO-EXISTE", dto.UpdateProductRequest{PrimaryName: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

// Borrar un producto sin stock asociado lo elimina.
func TestProductUseCase_Delete(t *testing.T) {
	uc, _, _ := newProductUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{ProductNumber: "VET-001", PrimaryName: "A"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "VET-001"))

	got, err := uc.GetByNumber(ctx, "VET-001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Borrar un producto con stock vivo que lo referencia falla con ErrConflict.
func TestProductUseCase_DeleteConStockAsociado(t *testing.T) {
	uc, _, stock := newProductUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{ProductNumber: "VET-001", PrimaryName: "A"})
	require.NoError(t, err)
	stock.referenced[created.ID] = true

	err = uc.Delete(ctx, "VET-001")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Borrar un producto inexistente falla con ErrProductNotFound.
func TestProductUseCase_DeleteInexistente(t *testing.T) {
	uc, _, _ := newProductUC()

	err := uc.Delete(context.Background(), "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
