package model

import "github.com/shopspring/decimal"

// ShippingOption is a single quote returned by the shipping rating engine.
type ShippingOption struct {
	Service string
	ETADays int
	Cost    decimal.Decimal
}
