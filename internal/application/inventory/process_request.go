package inventory

import (
	"context"
	"time"

	"github.com/vetstock/vetstock-api/internal/application/dto"
	"github.com/vetstock/vetstock-api/internal/domain"
)

// ProcessBatchFromRequest adapta el request HTTP al orquestador ProcessBatch.
// clientID y actorID vienen del token (los pone el middleware de auth en el
// contexto de Fiber); direction la fija el handler según la ruta add/remove.
func (uc *ReconcileUseCase) ProcessBatchFromRequest(
	ctx context.Context,
	clientID, actorID string,
	direction Direction,
	in dto.StockBatchRequest,
) (*dto.StockBatchResponse, error) {
	items := make([]BatchItem, 0, len(in.Products))
	for _, p := range in.Products {
		var expiry *time.Time
		if p.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", p.ExpiryDate)
			if err != nil {
				return nil, domain.ErrInvalidInput
			}
			expiry = &parsed
		}
		items = append(items, BatchItem{
			ProductNumber: p.ProductNumber,
			BatchNumber:   p.BatchNumber,
			ExpiryDate:    expiry,
			Quantity:      p.Quantity,
		})
	}

	result, err := uc.ProcessBatch(ctx, BatchInput{
		PracticeID: in.PracticeID,
		ClientID:   clientID,
		ActorID:    actorID,
		Direction:  direction,
		Items:      items,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.StockBatchResponse{
		Message:   "lote procesado",
		Processed: result.Processed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Items:     make([]dto.StockItemOutcome, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		out.Items = append(out.Items, dto.StockItemOutcome{
			ProductNumber: item.ProductNumber,
			BatchNumber:   item.BatchNumber,
			ProductID:     item.ProductID,
			Status:        item.Status,
			Quantity:      item.Quantity,
			ErrorCode:     item.ErrorCode,
			ErrorMessage:  item.ErrorMessage,
		})
	}
	return out, nil
}
