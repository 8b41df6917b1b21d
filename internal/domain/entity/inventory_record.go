package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es la cantidad de un artículo en una ubicación (y lote, si aplica).
// (ItemID, LocationID, BatchNumber) identifica el punto de stock; pueden coexistir
// varios lotes del mismo artículo en la misma ubicación.
type InventoryRecord struct {
	ID               string
	ItemID           string
	LocationID       string
	Quantity         decimal.Decimal // puede ser negativo (sobre-reserva)
	ReservedQuantity decimal.Decimal
	ReorderPoint     decimal.Decimal // copiado del artículo
	BatchNumber      string          // vacío si el artículo no maneja lotes
	ManufactureDate  *time.Time
	ExpiryDate       *time.Time // nil = no perecedero
	UpdatedAt        time.Time
}
