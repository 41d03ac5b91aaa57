package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product describes a catalog entry. Stock and sales move in opposite
// directions between checkout and cancellation.
type Product struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Stock       int
	Sales       int
	IsActive    bool
	IsFeatured  bool
	Views       int64
	CreatedAt   time.Time
}
