package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo (insumo, bebida, plato de venta).
// ReorderPoint es el umbral bajo el cual se debe reponer; se replica en cada registro de stock.
type Item struct {
	ID                    string
	SKU                   string // código único
	Name                  string
	Description           string
	CategoryID            string // vacío si no tiene categoría
	UnitOfMeasure         string
	CostPrice             decimal.Decimal
	SellingPrice          decimal.Decimal
	ReorderPoint          decimal.Decimal
	ReorderQuantity       decimal.Decimal
	PreferredSupplierID   string // vacío si no hay proveedor preferido
	IsActive              bool
	IsRawMaterial         bool
	RequiresBatchTracking bool
	ShelfLifeDays         *int // nil = no perecedero
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
