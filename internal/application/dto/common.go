package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MissingReferenceDTO registro omitido porque su artículo o ubicación no existe.
type MissingReferenceDTO struct {
	ItemID      string `json:"item_id"`
	LocationID  string `json:"location_id"`
	BatchNumber string `json:"batch_number,omitempty"`
	Kind        string `json:"kind"` // item | location
}
