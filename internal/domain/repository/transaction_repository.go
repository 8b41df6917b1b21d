package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// TransactionRepository lectura del libro de inventario (append-only, lo escribe otro sistema).
type TransactionRepository interface {
	// CountSince cuenta los asientos creados desde since (inclusive).
	CountSince(ctx context.Context, since time.Time) (int, error)
	// ListRecent devuelve los últimos asientos, más reciente primero.
	ListRecent(ctx context.Context, limit int) ([]*entity.InventoryTransaction, error)
}
