package repository

import "github.com/jhoicas/stockwatch-api/internal/domain/entity"

// Dataset conjunto completo de filas de inventario; lo usan los fixtures de demo
// y la importación a SQLite.
type Dataset struct {
	Suppliers    []entity.Supplier
	Locations    []entity.Location
	Items        []entity.Item
	Records      []entity.InventoryRecord
	Transactions []entity.InventoryTransaction
	Profiles     []entity.Profile
}

// Snapshot arma el snapshot de inventario del conjunto.
func (d *Dataset) Snapshot() *Snapshot {
	return NewSnapshot(d.Records, d.Items, d.Locations, d.Suppliers)
}
