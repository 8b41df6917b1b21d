package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.ItemCounter = (*ItemRepo)(nil)

// ItemRepo consultas sobre artículos locales.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// CountActive cuenta los artículos activos.
func (r *ItemRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE is_active = 1`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active items: %w", err)
	}
	return n, nil
}
