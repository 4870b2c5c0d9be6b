package entities

import (
	"time"
)

// Vehicle belongs to a client (weak reference by ClientID, not ownership:
// deleting the client is blocked instead of cascading).
//
// Plate accepts both the old Brazilian format (ABC-1234) and Mercosul
// (ABC1D23), hence the 7-8 length window.
type Vehicle struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Brand     string    `json:"brand"`
	Year      int       `json:"year"`
	Color     string    `json:"color"`
	Chassis   string    `json:"chassis,omitempty"`
	Mileage   int       `json:"mileage"`
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the field constraints and returns the first violation.
// Resolution of ClientID against the client collection is an integrity
// rule enforced by the use case, not here.
func (v Vehicle) Validate() error {
	if l := len(v.Plate); l < 7 || l > 8 {
		return NewValidationError("plate", "must have 7 or 8 characters")
	}
	if v.Model == "" {
		return NewValidationError("model", "is required")
	}
	if v.Brand == "" {
		return NewValidationError("brand", "is required")
	}
	maxYear := time.Now().Year() + 1
	if v.Year < 1900 || v.Year > maxYear {
		return NewValidationError("year", "must be between 1900 and next year")
	}
	if v.Mileage < 0 {
		return NewValidationError("mileage", "must not be negative")
	}
	if v.ClientID == "" {
		return NewValidationError("client_id", "is required")
	}
	return nil
}
