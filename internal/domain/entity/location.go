package entity

import "time"

// Tipos de ubicación.
const (
	LocationTypeWarehouse = "warehouse"
	LocationTypeBar       = "bar"
	LocationTypeKitchen   = "kitchen"
	LocationTypeStore     = "store"
)

// Location representa una bodega, barra o cocina donde se almacena stock.
type Location struct {
	ID           string
	Name         string
	Address      string
	City         string
	Country      string
	LocationType string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
