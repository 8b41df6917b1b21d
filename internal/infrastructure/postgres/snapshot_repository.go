package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.InventorySnapshotSource = (*SnapshotRepo)(nil)

// SnapshotRepo lee inventario, artículos, ubicaciones y proveedores en una sola transacción.
type SnapshotRepo struct {
	tx *TxRunner
}

// NewSnapshotRepository construye el adaptador de snapshot sobre el pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{tx: NewTxRunner(pool)}
}

// LoadSnapshot devuelve una foto consistente del inventario.
func (r *SnapshotRepo) LoadSnapshot(ctx context.Context) (*repository.Snapshot, error) {
	var (
		records   []entity.InventoryRecord
		items     []entity.Item
		locations []entity.Location
		suppliers []entity.Supplier
	)
	err := r.tx.ReadOnly(ctx, func(q Querier) error {
		var err error
		if records, err = listInventory(ctx, q); err != nil {
			return err
		}
		if items, err = listItems(ctx, q); err != nil {
			return err
		}
		if locations, err = listLocations(ctx, q); err != nil {
			return err
		}
		suppliers, err = listSuppliers(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return repository.NewSnapshot(records, items, locations, suppliers), nil
}

func listInventory(ctx context.Context, q Querier) ([]entity.InventoryRecord, error) {
	const query = `
		SELECT id, item_id, location_id, quantity, reserved_quantity,
		       COALESCE(batch_number, ''), manufacture_date, expiry_date, updated_at
		FROM inventory
		ORDER BY item_id, location_id, batch_number`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.ItemID, &rec.LocationID, &rec.Quantity, &rec.ReservedQuantity,
			&rec.BatchNumber, &rec.ManufactureDate, &rec.ExpiryDate, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func listItems(ctx context.Context, q Querier) ([]entity.Item, error) {
	const query = `
		SELECT id, sku, name, COALESCE(description, ''), COALESCE(category_id::TEXT, ''),
		       unit_of_measure, cost_price, selling_price, reorder_point, reorder_quantity,
		       COALESCE(preferred_supplier_id::TEXT, ''), is_active, is_raw_material,
		       requires_batch_tracking, shelf_life_days, created_at, updated_at
		FROM items`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Description, &it.CategoryID,
			&it.UnitOfMeasure, &it.CostPrice, &it.SellingPrice, &it.ReorderPoint, &it.ReorderQuantity,
			&it.PreferredSupplierID, &it.IsActive, &it.IsRawMaterial,
			&it.RequiresBatchTracking, &it.ShelfLifeDays, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func listLocations(ctx context.Context, q Querier) ([]entity.Location, error) {
	const query = `
		SELECT id, name, COALESCE(address, ''), COALESCE(city, ''), COALESCE(country, ''),
		       location_type, is_active, created_at, updated_at
		FROM locations`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.City, &l.Country,
			&l.LocationType, &l.IsActive, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func listSuppliers(ctx context.Context, q Querier) ([]entity.Supplier, error) {
	const query = `
		SELECT id, name, COALESCE(contact_person, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       currency, payment_terms, lead_time_days, is_active, created_at, updated_at
		FROM suppliers`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
			&s.Currency, &s.PaymentTerms, &s.LeadTimeDays, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
