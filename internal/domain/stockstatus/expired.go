package stockstatus

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// ExpiredEntry registro vencido con datos para mostrar.
type ExpiredEntry struct {
	ItemID       string
	LocationID   string
	BatchNumber  string
	ItemName     string
	SKU          string
	LocationName string
	Quantity     decimal.Decimal
	ExpiryDate   time.Time
}

// ExpiredReport resultado de BuildExpiredView.
type ExpiredReport struct {
	Entries []ExpiredEntry
	Missing []MissingReference
}

// BuildExpiredView devuelve los registros vencidos en now, ordenados por fecha de vencimiento
// ascendente y luego por nombre de artículo. Las referencias faltantes se tratan igual que en
// BuildLowStockAlerts.
func BuildExpiredView(
	records []entity.InventoryRecord,
	itemsByID map[string]ItemRef,
	locationsByID map[string]LocationRef,
	now time.Time,
) ExpiredReport {
	report := ExpiredReport{Entries: []ExpiredEntry{}}

	for _, rec := range records {
		if Classify(rec, now) != StatusExpired {
			continue
		}
		item, loc, missing := resolve(rec, itemsByID, locationsByID)
		if missing != nil {
			report.Missing = append(report.Missing, *missing)
			continue
		}
		report.Entries = append(report.Entries, ExpiredEntry{
			ItemID:       rec.ItemID,
			LocationID:   rec.LocationID,
			BatchNumber:  rec.BatchNumber,
			ItemName:     item.Name,
			SKU:          item.SKU,
			LocationName: loc.Name,
			Quantity:     rec.Quantity,
			ExpiryDate:   *rec.ExpiryDate,
		})
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i], report.Entries[j]
		if !a.ExpiryDate.Equal(b.ExpiryDate) {
			return a.ExpiryDate.Before(b.ExpiryDate)
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		return a.LocationName < b.LocationName
	})

	return report
}
