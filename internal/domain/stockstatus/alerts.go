package stockstatus

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// Tipos de referencia faltante.
const (
	MissingItem     = "item"
	MissingLocation = "location"
)

// MissingReference registro cuyo artículo o ubicación no existe en los datos de referencia.
// El registro se excluye de la vista y se reporta aquí; nunca aborta el lote.
type MissingReference struct {
	ItemID      string
	LocationID  string
	BatchNumber string
	Kind        string // MissingItem | MissingLocation
}

// LowStockAlert registro en estado low o critical enriquecido con datos para mostrar.
type LowStockAlert struct {
	ItemID                string
	LocationID            string
	BatchNumber           string
	ItemName              string
	SKU                   string
	LocationName          string
	PreferredSupplierName *string
	Quantity              decimal.Decimal
	ReorderPoint          decimal.Decimal
	Deficit               decimal.Decimal // Quantity - ReorderPoint
	Status                Status
}

// AlertReport resultado de BuildLowStockAlerts.
type AlertReport struct {
	Alerts  []LowStockAlert
	Missing []MissingReference
}

// BuildLowStockAlerts devuelve los registros low/critical ordenados del más deficitario al menos:
// Deficit ascendente, luego ItemName ascendente (y LocationName, BatchNumber para desempatar).
// Los registros con artículo o ubicación inexistente se excluyen y se listan en Missing.
func BuildLowStockAlerts(
	records []entity.InventoryRecord,
	itemsByID map[string]ItemRef,
	locationsByID map[string]LocationRef,
	now time.Time,
) AlertReport {
	report := AlertReport{Alerts: []LowStockAlert{}}

	for _, rec := range records {
		status := Classify(rec, now)
		if !status.NeedsReorder() {
			continue
		}
		item, loc, missing := resolve(rec, itemsByID, locationsByID)
		if missing != nil {
			report.Missing = append(report.Missing, *missing)
			continue
		}
		report.Alerts = append(report.Alerts, LowStockAlert{
			ItemID:                rec.ItemID,
			LocationID:            rec.LocationID,
			BatchNumber:           rec.BatchNumber,
			ItemName:              item.Name,
			SKU:                   item.SKU,
			LocationName:          loc.Name,
			PreferredSupplierName: item.PreferredSupplierName,
			Quantity:              rec.Quantity,
			ReorderPoint:          rec.ReorderPoint,
			Deficit:               Deficit(rec),
			Status:                status,
		})
	}

	sort.SliceStable(report.Alerts, func(i, j int) bool {
		a, b := report.Alerts[i], report.Alerts[j]
		if !a.Deficit.Equal(b.Deficit) {
			return a.Deficit.LessThan(b.Deficit)
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		if a.LocationName != b.LocationName {
			return a.LocationName < b.LocationName
		}
		return a.BatchNumber < b.BatchNumber
	})

	return report
}

// resolve busca las referencias del registro. Si falta el artículo se reporta como MissingItem
// aunque también falte la ubicación.
func resolve(
	rec entity.InventoryRecord,
	itemsByID map[string]ItemRef,
	locationsByID map[string]LocationRef,
) (ItemRef, LocationRef, *MissingReference) {
	item, ok := itemsByID[rec.ItemID]
	if !ok {
		return ItemRef{}, LocationRef{}, &MissingReference{
			ItemID: rec.ItemID, LocationID: rec.LocationID, BatchNumber: rec.BatchNumber, Kind: MissingItem,
		}
	}
	loc, ok := locationsByID[rec.LocationID]
	if !ok {
		return ItemRef{}, LocationRef{}, &MissingReference{
			ItemID: rec.ItemID, LocationID: rec.LocationID, BatchNumber: rec.BatchNumber, Kind: MissingLocation,
		}
	}
	return item, loc, nil
}
