package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo lectura del libro inventory_transactions.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// CountSince cuenta los asientos con created_at >= since.
func (r *TransactionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_transactions WHERE created_at >= $1`, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// ListRecent devuelve los últimos asientos con nombre de artículo, ubicación y usuario.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.InventoryTransaction, error) {
	const query = `
		SELECT t.id, t.item_id, t.location_id, t.transaction_type,
		       t.quantity_change, t.quantity_before, t.quantity_after,
		       COALESCE(t.batch_number, ''), COALESCE(t.reference_id::TEXT, ''), COALESCE(t.reference_type, ''),
		       COALESCE(t.notes, ''), COALESCE(t.created_by::TEXT, ''), t.created_at,
		       COALESCE(i.name, ''), COALESCE(i.sku, ''), COALESCE(l.name, ''), COALESCE(p.full_name, '')
		FROM inventory_transactions t
		LEFT JOIN items     i ON i.id = t.item_id
		LEFT JOIN locations l ON l.id = t.location_id
		LEFT JOIN profiles  p ON p.id = t.created_by
		ORDER BY t.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.ItemID, &t.LocationID, &t.Type,
			&t.QuantityChange, &t.QuantityBefore, &t.QuantityAfter,
			&t.BatchNumber, &t.ReferenceID, &t.ReferenceType,
			&t.Notes, &t.CreatedBy, &t.CreatedAt,
			&t.ItemName, &t.ItemSKU, &t.LocationName, &t.CreatedByName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
