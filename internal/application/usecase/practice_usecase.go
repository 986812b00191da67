package usecase

import (
	"context"

	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/domain"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

// PracticeUseCase consultas de prácticas (solo lectura en este servicio).
type PracticeUseCase struct {
	repo repository.PracticeRepository
}

// NewPracticeUseCase construye el caso de uso.
func NewPracticeUseCase(repo repository.PracticeRepository) *PracticeUseCase {
	return &PracticeUseCase{repo: repo}
}

// ListByClient lista las prácticas de un cliente. El clientID solicitado debe
// coincidir con el del token.
func (uc *PracticeUseCase) ListByClient(ctx context.Context, tokenClientID, clientID string) ([]dto.PracticeResponse, error) {
	if clientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if tokenClientID != "" && clientID != tokenClientID {
		return nil, domain.ErrForbidden
	}
	practices, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PracticeResponse, 0, len(practices))
	for _, p := range practices {
		out = append(out, *toPracticeResponse(p))
	}
	return out, nil
}

// GetByID obtiene una práctica por ID, verificando pertenencia al cliente del token.
func (uc *PracticeUseCase) GetByID(ctx context.Context, tokenClientID, practiceID string) (*dto.PracticeResponse, error) {
	if practiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	practice, err := uc.repo.GetByID(ctx, practiceID)
	if err != nil {
		return nil, err
	}
	if practice == nil {
		return nil, domain.ErrNotFound
	}
	if tokenClientID != "" && practice.ClientID != tokenClientID {
		return nil, domain.ErrForbidden
	}
	return toPracticeResponse(practice), nil
}

func toPracticeResponse(p *entity.Practice) *dto.PracticeResponse {
	if p == nil {
		return nil
	}
	return &dto.PracticeResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}
