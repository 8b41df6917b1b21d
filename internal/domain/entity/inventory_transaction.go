package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de inventario.
const (
	TransactionPurchase   = "purchase"
	TransactionSale       = "sale"
	TransactionProduction = "production"
	TransactionAdjustment = "adjustment"
	TransactionTransfer   = "transfer"
)

// InventoryTransaction es un asiento inmutable del libro de inventario (append-only).
type InventoryTransaction struct {
	ID             string
	ItemID         string
	LocationID     string
	Type           string
	QuantityChange decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	BatchNumber    string
	ReferenceID    string
	ReferenceType  string // purchase_order, sale, transfer_order...
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time

	// Campos de lectura resueltos por join; no se persisten.
	ItemName      string
	ItemSKU       string
	LocationName  string
	CreatedByName string
}
