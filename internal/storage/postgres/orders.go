package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

const orderColumns = `id, order_number, user_id, customer, shipping_address, items,
        subtotal::text, shipping_cost::text, total::text,
        payment_method, payment_status, status, cancelled_at, cancel_reason, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o                                model.Order
		customer, shippingAddress, items []byte
		subtotal, shippingCost, total    string
	)
	err := row.Scan(&o.ID, &o.Number, &o.UserID, &customer, &shippingAddress, &items,
		&subtotal, &shippingCost, &total,
		&o.PaymentMethod, &o.PaymentStatus, &o.Status, &o.CancelledAt, &o.CancelReason, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return nil, fmt.Errorf("decode customer snapshot: %w", err)
	}
	if err := json.Unmarshal(shippingAddress, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping snapshot: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items snapshot: %w", err)
	}

	if o.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, err
	}
	if o.ShippingCost, err = decimal.NewFromString(shippingCost); err != nil {
		return nil, err
	}
	if o.Total, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}

	return &o, nil
}

// Create persists the order and applies every conditional stock decrement in
// one transaction: either the order exists with all stock movements applied,
// or nothing changed.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	created.ID = uuid.New()

	customer, err := json.Marshal(created.Customer)
	if err != nil {
		return nil, err
	}
	shippingAddress, err := json.Marshal(created.ShippingAddress)
	if err != nil {
		return nil, err
	}
	items, err := json.Marshal(created.Items)
	if err != nil {
		return nil, err
	}

	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var seq int64
		if err := tx.QueryRow(ctx, `SELECT nextval('order_number_seq')`).Scan(&seq); err != nil {
			return err
		}
		created.Number = fmt.Sprintf("SN%s%04d", time.Now().Format("060102"), seq)

		const insert = `INSERT INTO orders
                        (id, order_number, user_id, customer, shipping_address, items,
                         subtotal, shipping_cost, total, payment_method, payment_status, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                        RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, insert,
			created.ID, created.Number, created.UserID, customer, shippingAddress, items,
			created.Subtotal.StringFixed(2), created.ShippingCost.StringFixed(2), created.Total.StringFixed(2),
			created.PaymentMethod, created.PaymentStatus, created.Status,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrConflict
			}
			return err
		}

		for _, item := range created.Items {
			if err := decrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel transitions the order to cancelled and reverses its stock movements
// in the same transaction. Items whose product has since left the catalog are
// skipped rather than blocking the cancellation.
func (r *orderRepository) Cancel(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	var cancelled *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, selectQuery, id, userID))
		if err != nil {
			return err
		}

		if !order.Status.Cancellable() {
			return domainErrors.ErrInvalidTransition
		}

		const update = `UPDATE orders
                        SET status=$2, cancelled_at=NOW(), cancel_reason=$3, updated_at=NOW()
                        WHERE id=$1
                        RETURNING cancelled_at, updated_at`
		if err := tx.QueryRow(ctx, update, order.ID, model.OrderStatusCancelled, reason).Scan(&order.CancelledAt, &order.UpdatedAt); err != nil {
			return err
		}
		order.Status = model.OrderStatusCancelled
		order.CancelReason = reason

		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, incrementStockQuery, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (r *orderRepository) HasActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (
                       SELECT 1 FROM orders
                       WHERE user_id=$1 AND status IN ('pending', 'processing', 'shipped')
                   )`
	var active bool
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}

func (r *orderRepository) SelectUnpaidBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders
                   WHERE status='pending' AND payment_status='pending' AND created_at < $1
                   ORDER BY created_at
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
