package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vetstock/vetstock-api/internal/domain/entity"
	"github.com/vetstock/vetstock-api/internal/domain/repository"
)

var _ repository.PracticeRepository = (*PracticeRepo)(nil)

// PracticeRepo implementación de PracticeRepository sobre PostgreSQL (solo lectura).
type PracticeRepo struct {
	q Querier
}

// NewPracticeRepository construye el adaptador de prácticas.
func NewPracticeRepository(q Querier) *PracticeRepo {
	return &PracticeRepo{q: q}
}

const practiceColumns = `id, client_id, name, address, phone, email, created_at`

// GetByID devuelve la práctica, o nil si no existe.
func (r *PracticeRepo) GetByID(ctx context.Context, id string) (*entity.Practice, error) {
	query := `SELECT ` + practiceColumns + ` FROM practices WHERE id = $1`
	var p entity.Practice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Address, &p.Phone, &p.Email, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get practice: %w", err)
	}
	return &p, nil
}

// ListByClient lista las prácticas de un cliente.
func (r *PracticeRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Practice, error) {
	query := `SELECT ` + practiceColumns + ` FROM practices WHERE client_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Practice
	for rows.Next() {
		var p entity.Practice
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.Address, &p.Phone, &p.Email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan practice: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
