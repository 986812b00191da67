package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetstock/vetstock-api/internal/application/usecase"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
)

type memPracticeRepo struct {
	byID map[string]*entity.Practice
}

func (r *memPracticeRepo) GetByID(_ context.Context, id string) (*entity.Practice, error) {
	return r.byID[id], nil
}

func (r *memPracticeRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Practice, error) {
	var out []*entity.Practice
	for _, p := range r.byID {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newPracticeUC() *usecase.PracticeUseCase {
	repo := &memPracticeRepo{byID: map[string]*entity.Practice{
		"p-1": {ID: "p-1", ClientID: "c-1", Name: "Clínica Central"},
		"p-2": {ID: "p-2", ClientID: "c-1", Name: "Clínica Norte"},
		"p-3": {ID: "p-3", ClientID: "c-2", Name: "Clínica Ajena"},
	}}
	return usecase.NewPracticeUseCase(repo)
}

// Listar devuelve solo las prácticas del cliente pedido.
func TestPracticeUseCase_ListByClient(t *testing.T) {
	uc := newPracticeUC()

	practices, err := uc.ListByClient(context.Background(), "c-1", "c-1")
	require.NoError(t, err)
	assert.Len(t, practices, 2)
}

// Pedir las prácticas de otro cliente falla con ErrForbidden.
func TestPracticeUseCase_ListDeOtroCliente(t *testing.T) {
	uc := newPracticeUC()

	_, err := uc.ListByClient(context.Background(), "c-1", "c-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// GetByID verifica que la práctica pertenezca al cliente del token.
func TestPracticeUseCase_GetByID(t *testing.T) {
	uc := newPracticeUC()
	ctx := context.Background()

	practice, err := uc.GetByID(ctx, "c-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Clínica Central", practice.Name)

	_, err = uc.GetByID(ctx, "c-1", "p-3")
	assert.ErrorIs(t, err, domain.ErrForbidden, "práctica de otro cliente")

	_, err = uc.GetByID(ctx, "c-1", "p-9")
	assert.ErrorIs(t, err, domain.ErrNotFound, "práctica inexistente")
}
