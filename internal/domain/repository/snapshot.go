package repository

import (
	"context"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/stockstatus"
)

// Snapshot foto consistente del inventario con sus datos de referencia indexados por id.
type Snapshot struct {
	Records   []entity.InventoryRecord
	Items     map[string]stockstatus.ItemRef
	Locations map[string]stockstatus.LocationRef
}

// InventorySnapshotSource define el puerto que entrega el snapshot de inventario (DIP).
// Implementaciones: PostgreSQL, SQLite local y datos de demostración.
type InventorySnapshotSource interface {
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
}

// NewSnapshot arma el snapshot a partir de filas crudas. El punto de reorden de cada registro
// se toma del artículo cuando existe; si el artículo no existe se conserva el del registro.
func NewSnapshot(
	records []entity.InventoryRecord,
	items []entity.Item,
	locations []entity.Location,
	suppliers []entity.Supplier,
) *Snapshot {
	supplierNames := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	snap := &Snapshot{
		Records:   make([]entity.InventoryRecord, 0, len(records)),
		Items:     make(map[string]stockstatus.ItemRef, len(items)),
		Locations: make(map[string]stockstatus.LocationRef, len(locations)),
	}
	for _, it := range items {
		ref := stockstatus.ItemRef{
			Name:         it.Name,
			SKU:          it.SKU,
			ReorderPoint: it.ReorderPoint,
			CostPrice:    it.CostPrice,
			IsActive:     it.IsActive,
		}
		if name, ok := supplierNames[it.PreferredSupplierID]; ok && it.PreferredSupplierID != "" {
			n := name
			ref.PreferredSupplierName = &n
		}
		snap.Items[it.ID] = ref
	}
	for _, l := range locations {
		snap.Locations[l.ID] = stockstatus.LocationRef{Name: l.Name}
	}
	for _, r := range records {
		if ref, ok := snap.Items[r.ItemID]; ok {
			r.ReorderPoint = ref.ReorderPoint
		}
		snap.Records = append(snap.Records, r)
	}
	return snap
}
