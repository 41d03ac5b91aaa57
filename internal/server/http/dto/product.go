package dto

import "time"

// ProductResponse is the storefront view of a catalog entry. Prices travel as
// fixed-point strings.
type ProductResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category,omitempty"`
	Image       string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	IsFeatured  bool      `json:"is_featured"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}
