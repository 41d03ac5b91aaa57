package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressType classifies entries of a user's address book.
type AddressType string

const (
	AddressTypeResidential AddressType = "Residential"
	AddressTypeWork        AddressType = "Work"
	AddressTypeOther       AddressType = "Other"
)

// Address is an address book entry. At most one address per user carries
// IsDefault after any successful write.
type Address struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Type       AddressType
	PostalCode string
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Reference  string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
