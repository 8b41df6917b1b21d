package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.ItemCounter = (*ItemRepo)(nil)

// ItemRepo consultas sobre el catálogo de artículos.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// CountActive cuenta los artículos activos.
func (r *ItemRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE is_active = true`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active items: %w", err)
	}
	return n, nil
}
