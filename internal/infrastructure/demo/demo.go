// Package demo entrega datos de demostración en memoria para DEMO_MODE.
// Implementa los mismos puertos que PostgreSQL y SQLite para que el evaluador
// se comporte igual en demo y en producción.
package demo

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/repository"
)

//go:embed fixtures.toml
var fixturesTOML string

type fixtureFile struct {
	Suppliers    []supplierRow    `toml:"suppliers"`
	Locations    []locationRow    `toml:"locations"`
	Items        []itemRow        `toml:"items"`
	Inventory    []inventoryRow   `toml:"inventory"`
	Transactions []transactionRow `toml:"transactions"`
	Profiles     []profileRow     `toml:"profiles"`
}

type supplierRow struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	ContactPerson string `toml:"contact_person"`
	Email         string `toml:"email"`
	Phone         string `toml:"phone"`
	Currency      string `toml:"currency"`
	PaymentTerms  int    `toml:"payment_terms"`
	LeadTimeDays  int    `toml:"lead_time_days"`
}

type locationRow struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	LocationType string `toml:"location_type"`
	Address      string `toml:"address"`
	City         string `toml:"city"`
}

type itemRow struct {
	ID                    string          `toml:"id"`
	SKU                   string          `toml:"sku"`
	Name                  string          `toml:"name"`
	Description           string          `toml:"description"`
	UnitOfMeasure         string          `toml:"unit_of_measure"`
	CostPrice             decimal.Decimal `toml:"cost_price"`
	SellingPrice          decimal.Decimal `toml:"selling_price"`
	ReorderPoint          decimal.Decimal `toml:"reorder_point"`
	ReorderQuantity       decimal.Decimal `toml:"reorder_quantity"`
	PreferredSupplierID   string          `toml:"preferred_supplier_id"`
	Inactive              bool            `toml:"inactive"`
	IsRawMaterial         bool            `toml:"is_raw_material"`
	RequiresBatchTracking bool            `toml:"requires_batch_tracking"`
	ShelfLifeDays         *int            `toml:"shelf_life_days"`
}

type inventoryRow struct {
	ID            string          `toml:"id"`
	ItemID        string          `toml:"item_id"`
	LocationID    string          `toml:"location_id"`
	Quantity      decimal.Decimal `toml:"quantity"`
	BatchNumber   string          `toml:"batch_number"`
	ExpiresInDays *int            `toml:"expires_in_days"`
}

type transactionRow struct {
	ID             string          `toml:"id"`
	ItemID         string          `toml:"item_id"`
	LocationID     string          `toml:"location_id"`
	Type           string          `toml:"type"`
	QuantityChange decimal.Decimal `toml:"quantity_change"`
	QuantityBefore decimal.Decimal `toml:"quantity_before"`
	QuantityAfter  decimal.Decimal `toml:"quantity_after"`
	BatchNumber    string          `toml:"batch_number"`
	ReferenceType  string          `toml:"reference_type"`
	Notes          string          `toml:"notes"`
	CreatedBy      string          `toml:"created_by"`
	MinutesAgo     int             `toml:"minutes_ago"`
}

type profileRow struct {
	ID       string `toml:"id"`
	Email    string `toml:"email"`
	FullName string `toml:"full_name"`
	Role     string `toml:"role"`
	Password string `toml:"password"`
}

// LoadDataset decodifica los fixtures embebidos. Las fechas relativas se resuelven contra now
// y las contraseñas se guardan como hash bcrypt.
func LoadDataset(now time.Time) (*repository.Dataset, error) {
	var f fixtureFile
	if _, err := toml.Decode(fixturesTOML, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return f.dataset(now)
}

func (f *fixtureFile) dataset(now time.Time) (*repository.Dataset, error) {
	ds := &repository.Dataset{}

	for _, s := range f.Suppliers {
		ds.Suppliers = append(ds.Suppliers, entity.Supplier{
			ID: s.ID, Name: s.Name, ContactPerson: s.ContactPerson, Email: s.Email, Phone: s.Phone,
			Currency: s.Currency, PaymentTerms: s.PaymentTerms, LeadTimeDays: s.LeadTimeDays,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	for _, l := range f.Locations {
		ds.Locations = append(ds.Locations, entity.Location{
			ID: l.ID, Name: l.Name, LocationType: l.LocationType, Address: l.Address, City: l.City,
			Country: "CO", IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	for _, it := range f.Items {
		ds.Items = append(ds.Items, entity.Item{
			ID: it.ID, SKU: it.SKU, Name: it.Name, Description: it.Description, UnitOfMeasure: it.UnitOfMeasure,
			CostPrice: it.CostPrice, SellingPrice: it.SellingPrice,
			ReorderPoint: it.ReorderPoint, ReorderQuantity: it.ReorderQuantity,
			PreferredSupplierID: it.PreferredSupplierID, IsActive: !it.Inactive,
			IsRawMaterial: it.IsRawMaterial, RequiresBatchTracking: it.RequiresBatchTracking,
			ShelfLifeDays: it.ShelfLifeDays, CreatedAt: now, UpdatedAt: now,
		})
	}
	for _, r := range f.Inventory {
		rec := entity.InventoryRecord{
			ID: r.ID, ItemID: r.ItemID, LocationID: r.LocationID, Quantity: r.Quantity,
			BatchNumber: r.BatchNumber, UpdatedAt: now,
		}
		if r.ExpiresInDays != nil {
			exp := now.AddDate(0, 0, *r.ExpiresInDays)
			rec.ExpiryDate = &exp
		}
		ds.Records = append(ds.Records, rec)
	}
	for _, t := range f.Transactions {
		ds.Transactions = append(ds.Transactions, entity.InventoryTransaction{
			ID: t.ID, ItemID: t.ItemID, LocationID: t.LocationID, Type: t.Type,
			QuantityChange: t.QuantityChange, QuantityBefore: t.QuantityBefore, QuantityAfter: t.QuantityAfter,
			BatchNumber: t.BatchNumber, ReferenceType: t.ReferenceType, Notes: t.Notes, CreatedBy: t.CreatedBy,
			CreatedAt: now.Add(-time.Duration(t.MinutesAgo) * time.Minute),
		})
	}
	for _, p := range f.Profiles {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password %s: %w", p.Email, err)
		}
		ds.Profiles = append(ds.Profiles, entity.Profile{
			ID: p.ID, Email: p.Email, FullName: p.FullName, Role: p.Role, PasswordHash: string(hash),
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	return ds, nil
}
