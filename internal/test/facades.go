package test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn   func(string) (uuid.UUID, error)
	UserID         uuid.UUID
}

// Register delegates to override or returns a default account.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: s.UserID, Name: name, Email: email, Role: model.RoleUser, IsActive: true}, "token", nil
}

// Authenticate delegates to override or succeeds with a default account.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: s.UserID, Email: email, Role: model.RoleUser, IsActive: true}, "token", nil
}

// ParseToken resolves tokens to the configured user.
func (s AuthFacadeStub) ParseToken(token string) (uuid.UUID, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return s.UserID, nil
}

// AccountFacadeStub simulates profile and account self-service operations.
type AccountFacadeStub struct {
	ProfileFn              func(context.Context, uuid.UUID) (*model.User, []model.Address, error)
	UpdateProfileFn        func(context.Context, uuid.UUID, string, string) (*model.User, error)
	ChangePasswordFn       func(context.Context, uuid.UUID, string, string) error
	RequestPasswordResetFn func(context.Context, string) (string, error)
	ResetPasswordFn        func(context.Context, string, string) error
	CloseAccountFn         func(context.Context, uuid.UUID) error
}

// Profile returns configured profile data.
func (s AccountFacadeStub) Profile(ctx context.Context, userID uuid.UUID) (*model.User, []model.Address, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "User", Role: model.RoleUser, IsActive: true}, nil, nil
}

// UpdateProfile returns the updated account.
func (s AccountFacadeStub) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, name, phone)
	}
	return &model.User{ID: userID, Name: name, Phone: phone, Role: model.RoleUser, IsActive: true}, nil
}

// ChangePassword executes configured handler.
func (s AccountFacadeStub) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, userID, current, next)
	}
	return nil
}

// RequestPasswordReset returns a deterministic recovery token.
func (s AccountFacadeStub) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if s.RequestPasswordResetFn != nil {
		return s.RequestPasswordResetFn(ctx, email)
	}
	return "reset-token", nil
}

// ResetPassword executes configured handler.
func (s AccountFacadeStub) ResetPassword(ctx context.Context, token, password string) error {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, token, password)
	}
	return nil
}

// CloseAccount executes configured handler.
func (s AccountFacadeStub) CloseAccount(ctx context.Context, userID uuid.UUID) error {
	if s.CloseAccountFn != nil {
		return s.CloseAccountFn(ctx, userID)
	}
	return nil
}

// CatalogFacadeStub serves canned catalog data.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, string, string) ([]model.Product, error)
	FeaturedFn func(context.Context) ([]model.Product, error)
	ProductFn  func(context.Context, uuid.UUID) (*model.Product, error)
}

// Products returns configured listings.
func (s CatalogFacadeStub) Products(ctx context.Context, category, search string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category, search)
	}
	return []model.Product{{ID: uuid.New(), Title: "Item", Price: decimal.RequireFromString("10.00"), IsActive: true}}, nil
}

// FeaturedProducts returns configured featured listings.
func (s CatalogFacadeStub) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	if s.FeaturedFn != nil {
		return s.FeaturedFn(ctx)
	}
	return nil, nil
}

// Product returns a single configured product.
func (s CatalogFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Title: "Item", Price: decimal.RequireFromString("10.00"), IsActive: true}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn       func(context.Context, uuid.UUID, usecase.CheckoutInput) (*model.Order, error)
	OrdersFn         func(context.Context, uuid.UUID) ([]model.Order, error)
	OrderFn          func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	CancelOrderFn    func(context.Context, uuid.UUID, uuid.UUID, string) (*model.Order, error)
	ShippingQuotesFn func(context.Context, string) ([]model.ShippingOption, error)
}

func defaultOrder(userID uuid.UUID) *model.Order {
	return &model.Order{
		ID:            uuid.New(),
		Number:        "SN0000000001",
		UserID:        userID,
		Status:        model.OrderStatusPending,
		PaymentMethod: model.PaymentMethodPix,
		PaymentStatus: model.PaymentStatusPending,
		Subtotal:      decimal.RequireFromString("130.00"),
		ShippingCost:  decimal.RequireFromString("15.00"),
		Total:         decimal.RequireFromString("145.00"),
	}
}

// Checkout delegates to override or returns a default order.
func (s OrderFacadeStub) Checkout(ctx context.Context, userID uuid.UUID, in usecase.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, userID, in)
	}
	return defaultOrder(userID), nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{*defaultOrder(userID)}, nil
}

// Order returns a single predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id, userID)
	}
	o := defaultOrder(userID)
	o.ID = id
	return o, nil
}

// CancelOrder returns the cancelled view of a default order.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, id, userID, reason)
	}
	o := defaultOrder(userID)
	o.ID = id
	o.Status = model.OrderStatusCancelled
	o.CancelReason = reason
	return o, nil
}

// ShippingQuotes returns canned delivery options.
func (s OrderFacadeStub) ShippingQuotes(ctx context.Context, postalCode string) ([]model.ShippingOption, error) {
	if s.ShippingQuotesFn != nil {
		return s.ShippingQuotesFn(ctx, postalCode)
	}
	return []model.ShippingOption{{Service: "PAC", ETADays: 5, Cost: decimal.RequireFromString("15.90")}}, nil
}

// AddressFacadeStub provides controllable behaviour for address endpoints.
type AddressFacadeStub struct {
	CreateAddressFn     func(context.Context, uuid.UUID, usecase.AddressInput) (*model.Address, error)
	AddressesFn         func(context.Context, uuid.UUID) ([]model.Address, error)
	AddressFn           func(context.Context, uuid.UUID, uuid.UUID) (*model.Address, error)
	UpdateAddressFn     func(context.Context, uuid.UUID, uuid.UUID, usecase.AddressUpdate) (*model.Address, error)
	DeleteAddressFn     func(context.Context, uuid.UUID, uuid.UUID) error
	SetDefaultAddressFn func(context.Context, uuid.UUID, uuid.UUID) (*model.Address, error)
}

func defaultAddress(id, userID uuid.UUID) *model.Address {
	return &model.Address{
		ID:         id,
		UserID:     userID,
		Type:       model.AddressTypeResidential,
		PostalCode: "01310100",
		Street:     "Av Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "Sao Paulo",
		State:      "SP",
		IsDefault:  true,
	}
}

// CreateAddress delegates to override or returns a default entry.
func (s AddressFacadeStub) CreateAddress(ctx context.Context, userID uuid.UUID, in usecase.AddressInput) (*model.Address, error) {
	if s.CreateAddressFn != nil {
		return s.CreateAddressFn(ctx, userID, in)
	}
	return defaultAddress(uuid.New(), userID), nil
}

// Addresses returns predefined entries.
func (s AddressFacadeStub) Addresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return []model.Address{*defaultAddress(uuid.New(), userID)}, nil
}

// Address returns one predefined entry.
func (s AddressFacadeStub) Address(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	if s.AddressFn != nil {
		return s.AddressFn(ctx, id, userID)
	}
	return defaultAddress(id, userID), nil
}

// UpdateAddress returns the updated entry.
func (s AddressFacadeStub) UpdateAddress(ctx context.Context, id, userID uuid.UUID, upd usecase.AddressUpdate) (*model.Address, error) {
	if s.UpdateAddressFn != nil {
		return s.UpdateAddressFn(ctx, id, userID, upd)
	}
	return defaultAddress(id, userID), nil
}

// DeleteAddress executes configured handler.
func (s AddressFacadeStub) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, id, userID)
	}
	return nil
}

// SetDefaultAddress promotes an entry.
func (s AddressFacadeStub) SetDefaultAddress(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	if s.SetDefaultAddressFn != nil {
		return s.SetDefaultAddressFn(ctx, id, userID)
	}
	return defaultAddress(id, userID), nil
}

// StoreFacadeStub aggregates all facade stubs for router level tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	AccountFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	AddressFacadeStub
}
