package dto

import "time"

// AddressResponse is an address book entry as returned to the client.
type AddressResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	PostalCode string    `json:"postal_code"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	Complement string    `json:"complement,omitempty"`
	District   string    `json:"district"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Reference  string    `json:"reference,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
