package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[uuid.UUID]*model.User
	Tokens  map[string]uuid.UUID
	Logins  []uuid.UUID
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
		Tokens:  make(map[string]uuid.UUID),
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	s.ByEmail[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile overwrites the mutable profile fields.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id uuid.UUID, name, phone string) (*model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Phone = phone
	return user, nil
}

// UpdatePassword replaces the stored hash and clears any reset token.
func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	for token, owner := range s.Tokens {
		if owner == id {
			delete(s.Tokens, token)
		}
	}
	return nil
}

// RecordLogin tracks login bookkeeping calls.
func (s *UserRepositoryStub) RecordLogin(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	s.Logins = append(s.Logins, id)
	if user, ok := s.ByID[id]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

// SetResetToken stores a recovery token for the user.
func (s *UserRepositoryStub) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	s.Tokens[token] = id
	return nil
}

// GetByResetToken resolves a previously stored recovery token.
func (s *UserRepositoryStub) GetByResetToken(ctx context.Context, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if id, ok := s.Tokens[token]; ok {
		return s.GetByID(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	delete(s.ByID, id)
	delete(s.ByEmail, user.Email)
	return nil
}

// ProductRepositoryStub keeps products in-memory and honours the conditional
// stock contract.
type ProductRepositoryStub struct {
	Products map[uuid.UUID]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub(products ...*model.Product) *ProductRepositoryStub {
	s := &ProductRepositoryStub{Products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		s.Products[p.ID] = p
	}
	return s
}

// List returns every active stored product.
func (s *ProductRepositoryStub) List(ctx context.Context, category, search string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// Featured returns stored featured products up to limit.
func (s *ProductRepositoryStub) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.IsFeatured && len(result) < limit {
			result = append(result, *p)
		}
	}
	return result, nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// IncrementViews bumps the view counter.
func (s *ProductRepositoryStub) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if p, ok := s.Products[id]; ok {
		p.Views++
		return nil
	}
	return domainErrors.ErrNotFound
}

// DecrementStock applies the conditional decrement.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	p, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if p.Stock < quantity {
		return domainErrors.ErrOutOfStock
	}
	p.Stock -= quantity
	p.Sales += quantity
	return nil
}

// IncrementStock reverses a decrement.
func (s *ProductRepositoryStub) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if p, ok := s.Products[id]; ok {
		p.Stock += quantity
		p.Sales -= quantity
	}
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour. The default Create
// mimics storage by applying stock decrements against Products when set.
type OrderRepositoryStub struct {
	CreateFn             func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn            func(context.Context, uuid.UUID, uuid.UUID) (*model.Order, error)
	ListByUserFn         func(context.Context, uuid.UUID) ([]model.Order, error)
	CancelFn             func(context.Context, uuid.UUID, uuid.UUID, string) (*model.Order, error)
	HasActiveFn          func(context.Context, uuid.UUID) (bool, error)
	SelectUnpaidBeforeFn func(context.Context, time.Time, int) ([]model.Order, error)

	Products *ProductRepositoryStub
	Created  []model.Order
	Orders   []model.Order
	Cancels  []uuid.UUID
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = uuid.New()
	created.Number = "SN0000000001"
	created.CreatedAt = time.Now()
	if s.Products != nil {
		for _, item := range created.Items {
			if err := s.Products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
	}
	s.Created = append(s.Created, created)
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns the configured order scoped to its owner.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id, userID)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id && s.Orders[i].UserID == userID {
			return &s.Orders[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders for the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

// Cancel records the call and transitions the stored order.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	s.Cancels = append(s.Cancels, id)
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id, userID, reason)
	}
	order, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !order.Status.Cancellable() {
		return nil, domainErrors.ErrInvalidTransition
	}
	order.Status = model.OrderStatusCancelled
	order.CancelReason = reason
	now := time.Now()
	order.CancelledAt = &now
	if s.Products != nil {
		for _, item := range order.Items {
			_ = s.Products.IncrementStock(ctx, item.ProductID, item.Quantity)
		}
	}
	return order, nil
}

// HasActive reports whether any stored order is still in progress.
func (s *OrderRepositoryStub) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.HasActiveFn != nil {
		return s.HasActiveFn(ctx, userID)
	}
	for _, o := range s.Orders {
		if o.UserID == userID && o.Status != model.OrderStatusCancelled && o.Status != model.OrderStatusDelivered {
			return true, nil
		}
	}
	return false, nil
}

// SelectUnpaidBefore returns configured unpaid orders.
func (s *OrderRepositoryStub) SelectUnpaidBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.SelectUnpaidBeforeFn != nil {
		return s.SelectUnpaidBeforeFn(ctx, cutoff, limit)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending && o.PaymentStatus == model.PaymentStatusPending && o.CreatedAt.Before(cutoff) {
			result = append(result, o)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// AddressRepositoryStub keeps addresses in-memory and maintains the
// single-default invariant the way storage does.
type AddressRepositoryStub struct {
	Addresses map[uuid.UUID]*model.Address
	Err       error
}

// NewAddressRepositoryStub constructs stub repository with initialized map.
func NewAddressRepositoryStub() *AddressRepositoryStub {
	return &AddressRepositoryStub{Addresses: make(map[uuid.UUID]*model.Address)}
}

func (s *AddressRepositoryStub) demoteOthers(userID, except uuid.UUID) {
	for _, a := range s.Addresses {
		if a.UserID == userID && a.ID != except {
			a.IsDefault = false
		}
	}
}

// Create stores the address, demoting siblings when it is default.
func (s *AddressRepositoryStub) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *address
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	if created.IsDefault {
		s.demoteOthers(created.UserID, created.ID)
	}
	s.Addresses[created.ID] = &created
	return &created, nil
}

// GetByID fetches an address scoped to its owner.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.Addresses[id]; ok && a.UserID == userID {
		clone := *a
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns the user's addresses, default first.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Address
	for _, a := range s.Addresses {
		if a.UserID == userID {
			if a.IsDefault {
				result = append([]model.Address{*a}, result...)
			} else {
				result = append(result, *a)
			}
		}
	}
	return result, nil
}

// CountByUser counts the user's addresses.
func (s *AddressRepositoryStub) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	count := 0
	for _, a := range s.Addresses {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

// Update overwrites a stored address, demoting siblings when it became
// default.
func (s *AddressRepositoryStub) Update(ctx context.Context, address *model.Address) (*model.Address, error) {
	stored, ok := s.Addresses[address.ID]
	if !ok || stored.UserID != address.UserID {
		return nil, domainErrors.ErrNotFound
	}
	updated := *address
	updated.UpdatedAt = time.Now()
	if updated.IsDefault {
		s.demoteOthers(updated.UserID, updated.ID)
	}
	s.Addresses[updated.ID] = &updated
	return &updated, nil
}

// Delete removes the address and promotes another one when the default was
// deleted.
func (s *AddressRepositoryStub) Delete(ctx context.Context, id, userID uuid.UUID) error {
	stored, ok := s.Addresses[id]
	if !ok || stored.UserID != userID {
		return domainErrors.ErrNotFound
	}
	wasDefault := stored.IsDefault
	delete(s.Addresses, id)
	if !wasDefault {
		return nil
	}
	var newest *model.Address
	for _, a := range s.Addresses {
		if a.UserID != userID {
			continue
		}
		if newest == nil || a.CreatedAt.After(newest.CreatedAt) {
			newest = a
		}
	}
	if newest != nil {
		newest.IsDefault = true
	}
	return nil
}

// SetDefault promotes one address and demotes the rest.
func (s *AddressRepositoryStub) SetDefault(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	stored, ok := s.Addresses[id]
	if !ok || stored.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	s.demoteOthers(userID, id)
	stored.IsDefault = true
	clone := *stored
	return &clone, nil
}
