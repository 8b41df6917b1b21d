package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

var _ repository.InventorySnapshotSource = (*SnapshotRepo)(nil)

// SnapshotRepo lee el snapshot de inventario dentro de una transacción.
type SnapshotRepo struct {
	db *sql.DB
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// LoadSnapshot devuelve una foto consistente del inventario local.
func (r *SnapshotRepo) LoadSnapshot(ctx context.Context) (*repository.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	records, err := listInventory(ctx, tx)
	if err != nil {
		return nil, err
	}
	items, err := listItems(ctx, tx)
	if err != nil {
		return nil, err
	}
	locations, err := listLocations(ctx, tx)
	if err != nil {
		return nil, err
	}
	suppliers, err := listSuppliers(ctx, tx)
	if err != nil {
		return nil, err
	}
	return repository.NewSnapshot(records, items, locations, suppliers), nil
}

func listInventory(ctx context.Context, q Querier) ([]entity.InventoryRecord, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, item_id, location_id, quantity, reserved_quantity, batch_number,
		       manufacture_date, expiry_date, updated_at
		FROM inventory
		ORDER BY item_id, location_id, batch_number`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryRecord
	for rows.Next() {
		var (
			rec                 entity.InventoryRecord
			manufacture, expiry sql.NullString
			updatedAt           string
		)
		if err := rows.Scan(
			&rec.ID, &rec.ItemID, &rec.LocationID, &rec.Quantity, &rec.ReservedQuantity, &rec.BatchNumber,
			&manufacture, &expiry, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		if rec.ManufactureDate, err = parseTimePtr(manufacture); err != nil {
			return nil, err
		}
		if rec.ExpiryDate, err = parseTimePtr(expiry); err != nil {
			return nil, err
		}
		if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func listItems(ctx context.Context, q Querier) ([]entity.Item, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, sku, name, description, category_id, unit_of_measure,
		       cost_price, selling_price, reorder_point, reorder_quantity, preferred_supplier_id,
		       is_active, is_raw_material, requires_batch_tracking, shelf_life_days, created_at, updated_at
		FROM items`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.Item
	for rows.Next() {
		var (
			it                   entity.Item
			shelfLife            sql.NullInt64
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&it.ID, &it.SKU, &it.Name, &it.Description, &it.CategoryID, &it.UnitOfMeasure,
			&it.CostPrice, &it.SellingPrice, &it.ReorderPoint, &it.ReorderQuantity, &it.PreferredSupplierID,
			&it.IsActive, &it.IsRawMaterial, &it.RequiresBatchTracking, &shelfLife, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if shelfLife.Valid {
			days := int(shelfLife.Int64)
			it.ShelfLifeDays = &days
		}
		if it.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if it.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func listLocations(ctx context.Context, q Querier) ([]entity.Location, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, address, city, country, location_type, is_active, created_at, updated_at
		FROM locations`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var list []entity.Location
	for rows.Next() {
		var (
			l                    entity.Location
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.LocationType, &l.IsActive, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if l.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func listSuppliers(ctx context.Context, q Querier) ([]entity.Supplier, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, contact_person, email, phone, currency, payment_terms, lead_time_days,
		       is_active, created_at, updated_at
		FROM suppliers`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var (
			s                    entity.Supplier
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Currency, &s.PaymentTerms, &s.LeadTimeDays,
			&s.IsActive, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if s.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
