package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

const productColumns = `id, title, slug, description, price::text, category, image, stock, sales, is_active, is_featured, views, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p     model.Product
		price string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &price, &p.Category, &p.Image, &p.Stock, &p.Sales, &p.IsActive, &p.IsFeatured, &p.Views, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]model.Product, error) {
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) List(ctx context.Context, category, search string) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + `
                   FROM products
                   WHERE is_active
                     AND ($1 = '' OR category = $1)
                     AND ($2 = '' OR title ILIKE '%' || $2 || '%')
                   ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, category, search)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *productRepository) Featured(ctx context.Context, limit int) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + `
                   FROM products
                   WHERE is_active AND is_featured
                   ORDER BY created_at DESC
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE products SET views = views + 1 WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

// decrementStockQuery couples stock and sales in one conditional statement so
// a concurrent checkout can never oversell.
const decrementStockQuery = `UPDATE products SET stock = stock - $2, sales = sales + $2 WHERE id=$1 AND stock >= $2`
const incrementStockQuery = `UPDATE products SET stock = stock + $2, sales = sales - $2 WHERE id=$1`

// execer covers both the pool and an open transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func decrementStock(ctx context.Context, db execer, id uuid.UUID, quantity int) error {
	tag, err := db.Exec(ctx, decrementStockQuery, id, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id=$1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ErrNotFound
		}
		return domainErrors.ErrOutOfStock
	}
	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return decrementStock(ctx, r.storage.pool, id, quantity)
}

func (r *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	_, err := r.storage.pool.Exec(ctx, incrementStockQuery, id, quantity)
	return err
}
