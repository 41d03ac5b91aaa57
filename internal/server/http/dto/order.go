package dto

import "time"

// CheckoutItemRequest references a catalog product. Quantity is the only
// trusted item field; prices always come from the catalog.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutAddress is the destination snapshot supplied at checkout.
type CheckoutAddress struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// CheckoutRequest places an order.
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items"`
	ShippingAddress CheckoutAddress       `json:"shipping_address"`
	PaymentMethod   string                `json:"payment_method"`
}

// CancelOrderRequest optionally carries the reason for a cancellation.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderItemResponse is a priced line of an order snapshot.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// OrderCustomerResponse mirrors the customer snapshot taken at checkout.
type OrderCustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	Status          string                `json:"status"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentStatus   string                `json:"payment_status"`
	Customer        OrderCustomerResponse `json:"customer"`
	ShippingAddress CheckoutAddress       `json:"shipping_address"`
	Items           []OrderItemResponse   `json:"items"`
	Subtotal        string                `json:"subtotal"`
	ShippingCost    string                `json:"shipping_cost"`
	Total           string                `json:"total"`
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
	CancelReason    string                `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ShippingOptionResponse is a single delivery quote.
type ShippingOptionResponse struct {
	Service string `json:"service"`
	ETADays int    `json:"eta_days"`
	Cost    string `json:"cost"`
}
