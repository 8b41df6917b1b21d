package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo lectura del libro de inventario local.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// CountSince cuenta los asientos con created_at >= since. Las fechas se guardan en UTC
// con el mismo formato, por lo que la comparación de texto respeta el orden temporal.
func (r *TransactionRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_transactions WHERE created_at >= ?`, formatTime(since),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// ListRecent devuelve los últimos asientos, más reciente primero.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.InventoryTransaction, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT t.id, t.item_id, t.location_id, t.transaction_type,
		       t.quantity_change, t.quantity_before, t.quantity_after,
		       t.batch_number, t.reference_id, t.reference_type, t.notes, t.created_by, t.created_at,
		       COALESCE(i.name, ''), COALESCE(i.sku, ''), COALESCE(l.name, ''), COALESCE(p.full_name, '')
		FROM inventory_transactions t
		LEFT JOIN items     i ON i.id = t.item_id
		LEFT JOIN locations l ON l.id = t.location_id
		LEFT JOIN profiles  p ON p.id = t.created_by
		ORDER BY t.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryTransaction
	for rows.Next() {
		var (
			t         entity.InventoryTransaction
			createdAt string
		)
		if err := rows.Scan(
			&t.ID, &t.ItemID, &t.LocationID, &t.Type,
			&t.QuantityChange, &t.QuantityBefore, &t.QuantityAfter,
			&t.BatchNumber, &t.ReferenceID, &t.ReferenceType, &t.Notes, &t.CreatedBy, &createdAt,
			&t.ItemName, &t.ItemSKU, &t.LocationName, &t.CreatedByName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
