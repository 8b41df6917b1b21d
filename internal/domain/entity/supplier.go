package entity

import "time"

// Supplier representa un proveedor.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Currency      string
	PaymentTerms  int // días
	LeadTimeDays  int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
