package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/usecase"
)

// StoreFacade is the application surface consumed by the HTTP layer and the
// background expiry worker. It delegates to the use cases without adding
// behaviour of its own.
type StoreFacade struct {
	auth      *usecase.AuthUseCase
	account   *usecase.AccountUseCase
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	addresses *usecase.AddressUseCase
}

func NewStoreFacade(auth *usecase.AuthUseCase, account *usecase.AccountUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, addresses *usecase.AddressUseCase) *StoreFacade {
	return &StoreFacade{auth: auth, account: account, catalog: catalog, orders: orders, addresses: addresses}
}

func (f *StoreFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (uuid.UUID, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Profile(ctx context.Context, userID uuid.UUID) (*model.User, []model.Address, error) {
	user, err := f.auth.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	addresses, err := f.addresses.List(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, addresses, nil
}

func (f *StoreFacade) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, name, phone)
}

func (f *StoreFacade) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return f.account.ChangePassword(ctx, userID, current, next)
}

func (f *StoreFacade) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	return f.account.RequestPasswordReset(ctx, email)
}

func (f *StoreFacade) ResetPassword(ctx context.Context, token, password string) error {
	return f.account.ResetPassword(ctx, token, password)
}

func (f *StoreFacade) CloseAccount(ctx context.Context, userID uuid.UUID) error {
	return f.account.Close(ctx, userID)
}

func (f *StoreFacade) Products(ctx context.Context, category, search string) ([]model.Product, error) {
	return f.catalog.List(ctx, category, search)
}

func (f *StoreFacade) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Featured(ctx)
}

func (f *StoreFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StoreFacade) Checkout(ctx context.Context, userID uuid.UUID, in usecase.CheckoutInput) (*model.Order, error) {
	return f.orders.Checkout(ctx, userID, in)
}

func (f *StoreFacade) Orders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	return f.orders.GetByID(ctx, id, userID)
}

func (f *StoreFacade) CancelOrder(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	return f.orders.Cancel(ctx, id, userID, reason)
}

func (f *StoreFacade) ShippingQuotes(ctx context.Context, postalCode string) ([]model.ShippingOption, error) {
	return f.orders.ShippingQuotes(ctx, postalCode)
}

func (f *StoreFacade) UnpaidOrdersBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return f.orders.UnpaidBefore(ctx, cutoff, limit)
}

func (f *StoreFacade) CreateAddress(ctx context.Context, userID uuid.UUID, in usecase.AddressInput) (*model.Address, error) {
	return f.addresses.Create(ctx, userID, in)
}

func (f *StoreFacade) Addresses(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	return f.addresses.List(ctx, userID)
}

func (f *StoreFacade) Address(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	return f.addresses.Get(ctx, id, userID)
}

func (f *StoreFacade) UpdateAddress(ctx context.Context, id, userID uuid.UUID, upd usecase.AddressUpdate) (*model.Address, error) {
	return f.addresses.Update(ctx, id, userID, upd)
}

func (f *StoreFacade) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {
	return f.addresses.Delete(ctx, id, userID)
}

func (f *StoreFacade) SetDefaultAddress(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	return f.addresses.SetDefault(ctx, id, userID)
}
