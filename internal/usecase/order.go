package usecase

import (
	"context"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/domain/repository"
	"github.com/snstore/backend/internal/validation"
)

// FlatShippingRate is the fixed shipping cost applied to every order.
var FlatShippingRate = decimal.RequireFromString("15.00")

const defaultCancelReason = "cancelled by customer"

// ShippingQuoter rates a destination into delivery options with a fixed
// contract, regardless of how the quotes are produced.
type ShippingQuoter interface {
	Quote(ctx context.Context, postalCode string) ([]model.ShippingOption, error)
}

// CheckoutItem references a catalog product by id; quantities are the only
// item data trusted from the caller.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CheckoutInput is the full checkout request for a user.
type CheckoutInput struct {
	Items           []CheckoutItem     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress model.OrderAddress `json:"shipping_address"`
	PaymentMethod   model.PaymentMethod `json:"payment_method"`
}

// OrderUseCase encapsulates checkout and the order lifecycle.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	quoter   ShippingQuoter
	validate *validatorv10.Validate
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, users repository.UserRepository, quoter ShippingQuoter, validate *validatorv10.Validate) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, users: users, quoter: quoter, validate: validate}
}

// Checkout places an order: it resolves every item against the catalog,
// snapshots title/price/image from the store (caller prices are ignored),
// computes totals and persists the order together with the conditional stock
// decrements. Any failure leaves no order and no stock movement behind.
func (u *OrderUseCase) Checkout(ctx context.Context, userID uuid.UUID, in CheckoutInput) (*model.Order, error) {
	if err := validation.Check(u.validate, in); err != nil {
		return nil, err
	}
	if !in.PaymentMethod.Valid() {
		return nil, domainErrors.NewValidation("payment_method")
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, item := range in.Items {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, domainErrors.ErrOutOfStock
		}
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Image:     product.Image,
		})
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &model.Order{
		UserID: userID,
		Customer: model.OrderCustomer{
			Name:  usr.Name,
			Email: usr.Email,
			Phone: usr.Phone,
		},
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		Subtotal:        subtotal,
		ShippingCost:    FlatShippingRate,
		Total:           subtotal.Add(FlatShippingRate),
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		Status:          model.OrderStatusPending,
	}

	return u.orders.Create(ctx, order)
}

// Cancel moves an order to cancelled and reverses its stock movements. Only
// pending and processing orders may be cancelled.
func (u *OrderUseCase) Cancel(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	if reason == "" {
		reason = defaultCancelReason
	}
	return u.orders.Cancel(ctx, id, userID, reason)
}

// ListByUser returns the caller's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetByID fetches an order scoped to its owner. Absent and not-owned are
// indistinguishable to the caller.
func (u *OrderUseCase) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	return u.orders.GetByID(ctx, id, userID)
}

// ShippingQuotes rates a destination postal code.
func (u *OrderUseCase) ShippingQuotes(ctx context.Context, postalCode string) ([]model.ShippingOption, error) {
	postalCode = digitsOnly(postalCode)
	if len(postalCode) != 8 {
		return nil, domainErrors.NewValidation("postal_code")
	}
	return u.quoter.Quote(ctx, postalCode)
}

// UnpaidBefore returns orders still awaiting payment created before cutoff.
func (u *OrderUseCase) UnpaidBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return u.orders.SelectUnpaidBefore(ctx, cutoff, limit)
}
