package dto

import "github.com/shopspring/decimal"

// ItemFilter filtros de GET /api/items.
type ItemFilter struct {
	Search     string `query:"q"`           // nombre o SKU
	ActiveOnly bool   `query:"active_only"` // oculta artículos inactivos
}

// ItemDTO artículo del catálogo con su stock consolidado en todas las ubicaciones.
type ItemDTO struct {
	ID                    string          `json:"id"`
	SKU                   string          `json:"sku"`
	Name                  string          `json:"name"`
	CostPrice             decimal.Decimal `json:"cost_price"`
	ReorderPoint          decimal.Decimal `json:"reorder_point"`
	IsActive              bool            `json:"is_active"`
	PreferredSupplierName *string         `json:"preferred_supplier_name"`
	TotalStock            decimal.Decimal `json:"total_stock"`
	Records               int             `json:"records"`
	Alerts                int             `json:"alerts"` // registros low o critical
}

// ItemsResponse respuesta de GET /api/items.
type ItemsResponse struct {
	Items []ItemDTO `json:"items"`
	Total int       `json:"total"`
}

// LocationDTO ubicación con el resumen de su inventario.
type LocationDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Records int             `json:"records"`
	Alerts  int             `json:"alerts"`
	Expired int             `json:"expired"`
	Value   decimal.Decimal `json:"value"` // al costo, redondeado a 2 decimales
}

// LocationsResponse respuesta de GET /api/locations.
type LocationsResponse struct {
	Locations []LocationDTO `json:"locations"`
}
