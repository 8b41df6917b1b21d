package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsDTO respuesta de GET /api/dashboard/stats (tarjetas del panel).
type DashboardStatsDTO struct {
	TotalItems             int             `json:"total_items"`     // artículos activos
	LowStockItems          int             `json:"low_stock_items"` // registros low + critical
	ExpiredItems           int             `json:"expired_items"`
	TotalValue             decimal.Decimal `json:"total_value"` // redondeado a 2 decimales
	UnresolvedValueRecords int             `json:"unresolved_value_records"`
	RecentTransactions     int             `json:"recent_transactions"`
	RecentDays             int             `json:"recent_days"`
}

// ActivityDTO asiento del libro de inventario para el widget de actividad reciente.
type ActivityDTO struct {
	ID             string          `json:"id"`
	Type           string          `json:"transaction_type"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	ItemName       string          `json:"item_name"`
	SKU            string          `json:"sku"`
	LocationName   string          `json:"location_name"`
	UserName       string          `json:"user_name,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
