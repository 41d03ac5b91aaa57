package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (uuid.UUID, error)
}

// AccountFacade covers profile reads and account self-service.
type AccountFacade interface {
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, []model.Address, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) (*model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) error
	CloseAccount(ctx context.Context, userID uuid.UUID) error
}

// CatalogFacade provides product browsing.
type CatalogFacade interface {
	Products(ctx context.Context, category, search string) ([]model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// OrderFacade encapsulates checkout and the order lifecycle exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, userID uuid.UUID, in usecase.CheckoutInput) (*model.Order, error)
	Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	Order(ctx context.Context, id, userID uuid.UUID) (*model.Order, error)
	CancelOrder(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error)
	ShippingQuotes(ctx context.Context, postalCode string) ([]model.ShippingOption, error)
}

// AddressFacade manages the per-user address book.
type AddressFacade interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, in usecase.AddressInput) (*model.Address, error)
	Addresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error)
	Address(ctx context.Context, id, userID uuid.UUID) (*model.Address, error)
	UpdateAddress(ctx context.Context, id, userID uuid.UUID, upd usecase.AddressUpdate) (*model.Address, error)
	DeleteAddress(ctx context.Context, id, userID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, id, userID uuid.UUID) (*model.Address, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	AccountFacade
	CatalogFacade
	OrderFacade
	AddressFacade
}
