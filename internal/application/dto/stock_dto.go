package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevelFilter filtros de GET /api/stock/levels. Campos vacíos = sin filtro.
type StockLevelFilter struct {
	LocationID string `query:"location_id"`
	Status     string `query:"status"` // normal | low | critical | expired
	Search     string `query:"q"`      // nombre o SKU, sin distinguir mayúsculas
}

// StockLevelDTO un registro de inventario con su estado calculado.
type StockLevelDTO struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	ItemName         string          `json:"item_name"`
	SKU              string          `json:"sku"`
	LocationID       string          `json:"location_id"`
	LocationName     string          `json:"location_name"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
	ReorderPoint     decimal.Decimal `json:"reorder_point"`
	BatchNumber      string          `json:"batch_number,omitempty"`
	ExpiryDate       *time.Time      `json:"expiry_date,omitempty"`
	Status           string          `json:"status"`
	StatusLabel      string          `json:"status_label"`
}

// StatusCountsDTO cantidad de registros por estado.
type StatusCountsDTO struct {
	Normal   int `json:"normal"`
	Low      int `json:"low"`
	Critical int `json:"critical"`
	Expired  int `json:"expired"`
	Total    int `json:"total"`
}

// StockLevelsResponse respuesta de GET /api/stock/levels.
// Counts se calcula sobre todo el inventario, antes de aplicar filtros.
type StockLevelsResponse struct {
	Levels  []StockLevelDTO       `json:"levels"`
	Counts  StatusCountsDTO       `json:"counts"`
	Missing []MissingReferenceDTO `json:"missing"`
}

// LowStockAlertDTO artículo por debajo del punto de reorden.
type LowStockAlertDTO struct {
	ItemID                string          `json:"item_id"`
	ItemName              string          `json:"item_name"`
	SKU                   string          `json:"sku"`
	LocationID            string          `json:"location_id"`
	LocationName          string          `json:"location_name"`
	BatchNumber           string          `json:"batch_number,omitempty"`
	CurrentStock          decimal.Decimal `json:"current_stock"`
	ReorderPoint          decimal.Decimal `json:"reorder_point"`
	Deficit               decimal.Decimal `json:"deficit"` // current_stock - reorder_point
	Status                string          `json:"status"`
	StatusLabel           string          `json:"status_label"`
	PreferredSupplierName *string         `json:"preferred_supplier_name"`
}

// LowStockAlertsResponse respuesta de GET /api/stock/alerts.
// Total es la cantidad completa de alertas aunque Alerts venga truncado por limit.
type LowStockAlertsResponse struct {
	Alerts  []LowStockAlertDTO    `json:"alerts"`
	Total   int                   `json:"total"`
	Missing []MissingReferenceDTO `json:"missing"`
}

// ExpiredStockDTO lote vencido.
type ExpiredStockDTO struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	SKU          string          `json:"sku"`
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	BatchNumber  string          `json:"batch_number,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	ExpiryDate   time.Time       `json:"expiry_date"`
}

// ExpiredStockResponse respuesta de GET /api/stock/expired.
type ExpiredStockResponse struct {
	Entries []ExpiredStockDTO     `json:"entries"`
	Missing []MissingReferenceDTO `json:"missing"`
}

// InventoryValueDTO valor del inventario al costo.
type InventoryValueDTO struct {
	TotalValue        decimal.Decimal `json:"total_value"`       // redondeado a 2 decimales
	TotalValueExact   decimal.Decimal `json:"total_value_exact"` // sin redondeo
	CountedRecords    int             `json:"counted_records"`
	UnresolvedRecords int             `json:"unresolved_records"`
	UnresolvedItemIDs []string        `json:"unresolved_item_ids"`
}
