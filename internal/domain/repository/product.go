package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
)

// ProductRepository gives access to the product catalog, including the
// conditional stock movements used by the order ledger.
type ProductRepository interface {
	List(ctx context.Context, category, search string) ([]model.Product, error)
	Featured(ctx context.Context, limit int) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	// DecrementStock subtracts quantity from stock and adds it to sales in a
	// single conditional statement; fails with ErrOutOfStock when stock is
	// lower than quantity.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	// IncrementStock is the exact inverse of DecrementStock.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
