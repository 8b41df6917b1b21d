package stockstatus

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// ValueSummary valor total del inventario al costo.
// Total no se redondea; el redondeo es responsabilidad de la presentación.
type ValueSummary struct {
	Total             decimal.Decimal
	Counted           int      // registros valorizados
	Unresolved        int      // registros excluidos por artículo inexistente
	UnresolvedItemIDs []string // ids únicos, ordenados
}

// AggregateInventoryValue suma Quantity * CostPrice de cada registro cuyo artículo existe.
// Cantidades negativas se suman tal cual.
func AggregateInventoryValue(records []entity.InventoryRecord, itemsByID map[string]ItemRef) ValueSummary {
	summary := ValueSummary{Total: decimal.Zero}
	seen := make(map[string]struct{})

	for _, rec := range records {
		item, ok := itemsByID[rec.ItemID]
		if !ok {
			summary.Unresolved++
			if _, dup := seen[rec.ItemID]; !dup {
				seen[rec.ItemID] = struct{}{}
				summary.UnresolvedItemIDs = append(summary.UnresolvedItemIDs, rec.ItemID)
			}
			continue
		}
		summary.Total = summary.Total.Add(rec.Quantity.Mul(item.CostPrice))
		summary.Counted++
	}

	sort.Strings(summary.UnresolvedItemIDs)
	return summary
}
