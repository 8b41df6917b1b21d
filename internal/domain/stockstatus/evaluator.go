package stockstatus

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// ItemRef datos de referencia de un artículo para mostrar y valorizar.
type ItemRef struct {
	Name                  string
	SKU                   string
	ReorderPoint          decimal.Decimal
	CostPrice             decimal.Decimal
	PreferredSupplierName *string // nil si no hay proveedor preferido
	IsActive              bool
}

// LocationRef datos de referencia de una ubicación.
type LocationRef struct {
	Name string
}

// Classify devuelve el estado de un registro en el instante now. Gana la primera regla que aplique:
//  1. ExpiryDate presente y anterior a now → expired
//  2. Quantity <= 0 → critical
//  3. Quantity <= ReorderPoint → low
//  4. en otro caso → normal
//
// Es total: un punto de reorden negativo o cero se compara tal cual, sin error.
func Classify(record entity.InventoryRecord, now time.Time) Status {
	if record.ExpiryDate != nil && record.ExpiryDate.Before(now) {
		return StatusExpired
	}
	if record.Quantity.LessThanOrEqual(decimal.Zero) {
		return StatusCritical
	}
	if record.Quantity.LessThanOrEqual(record.ReorderPoint) {
		return StatusLow
	}
	return StatusNormal
}

// Deficit devuelve Quantity - ReorderPoint (negativo = por debajo del punto de reorden).
func Deficit(record entity.InventoryRecord) decimal.Decimal {
	return record.Quantity.Sub(record.ReorderPoint)
}
