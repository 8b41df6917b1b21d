package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

// Import copia un Dataset completo a la base local en una sola transacción.
// Las filas existentes con el mismo id se reemplazan.
func Import(ctx context.Context, db *sql.DB, ds *repository.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range ds.Suppliers {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO suppliers (id, name, contact_person, email, phone, currency, payment_terms,
			                                  lead_time_days, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Currency, s.PaymentTerms,
			s.LeadTimeDays, s.IsActive, formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
		); err != nil {
			return fmt.Errorf("import supplier %s: %w", s.ID, err)
		}
	}
	for _, l := range ds.Locations {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO locations (id, name, address, city, country, location_type, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID, l.Name, l.Address, l.City, l.Country, l.LocationType, l.IsActive,
			formatTime(l.CreatedAt), formatTime(l.UpdatedAt),
		); err != nil {
			return fmt.Errorf("import location %s: %w", l.ID, err)
		}
	}
	for _, it := range ds.Items {
		var shelfLife any
		if it.ShelfLifeDays != nil {
			shelfLife = *it.ShelfLifeDays
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO items (id, sku, name, description, category_id, unit_of_measure, cost_price,
			                              selling_price, reorder_point, reorder_quantity, preferred_supplier_id,
			                              is_active, is_raw_material, requires_batch_tracking, shelf_life_days,
			                              created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.SKU, it.Name, it.Description, it.CategoryID, it.UnitOfMeasure, it.CostPrice,
			it.SellingPrice, it.ReorderPoint, it.ReorderQuantity, it.PreferredSupplierID,
			it.IsActive, it.IsRawMaterial, it.RequiresBatchTracking, shelfLife,
			formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
		); err != nil {
			return fmt.Errorf("import item %s: %w", it.ID, err)
		}
	}
	for _, rec := range ds.Records {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO inventory (id, item_id, location_id, quantity, reserved_quantity, batch_number,
			                                  manufacture_date, expiry_date, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.ItemID, rec.LocationID, rec.Quantity, rec.ReservedQuantity, rec.BatchNumber,
			formatTimePtr(rec.ManufactureDate), formatTimePtr(rec.ExpiryDate), formatTime(rec.UpdatedAt),
		); err != nil {
			return fmt.Errorf("import inventory %s: %w", rec.ID, err)
		}
	}
	for _, t := range ds.Transactions {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO inventory_transactions (id, item_id, location_id, transaction_type, quantity_change,
			                                               quantity_before, quantity_after, batch_number, reference_id,
			                                               reference_type, notes, created_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.ItemID, t.LocationID, t.Type, t.QuantityChange,
			t.QuantityBefore, t.QuantityAfter, t.BatchNumber, t.ReferenceID,
			t.ReferenceType, t.Notes, t.CreatedBy, formatTime(t.CreatedAt),
		); err != nil {
			return fmt.Errorf("import transaction %s: %w", t.ID, err)
		}
	}
	for _, p := range ds.Profiles {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO profiles (id, email, full_name, role, password_hash, avatar_url, is_active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Email, p.FullName, p.Role, p.PasswordHash, p.AvatarURL, p.IsActive,
			formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
		); err != nil {
			return fmt.Errorf("import profile %s: %w", p.Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
