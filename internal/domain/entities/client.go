package entities

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Client is a customer of the workshop.
//
// Document carries the tax id (CPF/CNPJ). Vehicles reference a client by id;
// a client with registered vehicles cannot be deleted.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the field constraints and returns the first violation.
func (c Client) Validate() error {
	if len(strings.TrimSpace(c.Name)) < 3 {
		return NewValidationError("name", "must have at least 3 characters")
	}
	if !emailPattern.MatchString(c.Email) {
		return NewValidationError("email", "must be a valid email address")
	}
	if len(c.Phone) < 10 {
		return NewValidationError("phone", "must have at least 10 characters")
	}
	if len(c.Document) < 11 {
		return NewValidationError("document", "must have at least 11 characters")
	}
	return nil
}
