package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
)

// AddressRepository manages a user's address book. Writes that touch the
// default flag demote or promote sibling addresses inside one transaction so
// the single-default invariant holds after every successful call.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Address, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Update(ctx context.Context, address *model.Address) (*model.Address, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SetDefault(ctx context.Context, id, userID uuid.UUID) (*model.Address, error)
}
