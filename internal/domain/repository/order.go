package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create and
// Cancel also apply the matching stock movements within the same transaction,
// so an order is never persisted with partial inventory updates.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	Cancel(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error)
	HasActive(ctx context.Context, userID uuid.UUID) (bool, error)
	SelectUnpaidBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
