package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/domain/repository"
)

const featuredLimit = 8

// CatalogCache is a read-through cache for catalog listings. Implementations
// must treat misses and backend failures separately so the caller can fall
// back to storage without masking real errors.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// CatalogUseCase serves product browsing with an optional cache in front of
// the catalog store.
type CatalogUseCase struct {
	products repository.ProductRepository
	cache    CatalogCache
	logger   *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, cache CatalogCache, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{products: products, cache: cache, logger: logger}
}

// List returns active products, newest first, optionally filtered by category
// and a search term. Cache failures are logged and never surfaced.
func (u *CatalogUseCase) List(ctx context.Context, category, search string) ([]model.Product, error) {
	key := fmt.Sprintf("products:%s:%s", category, search)

	var cached []model.Product
	if hit, err := u.cache.Get(ctx, key, &cached); err != nil {
		u.logger.Warn("catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	products, err := u.products.List(ctx, category, search)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, key, products); err != nil {
		u.logger.Warn("catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return products, nil
}

// Featured returns the curated storefront selection.
func (u *CatalogUseCase) Featured(ctx context.Context) ([]model.Product, error) {
	const key = "products:featured"

	var cached []model.Product
	if hit, err := u.cache.Get(ctx, key, &cached); err != nil {
		u.logger.Warn("catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	products, err := u.products.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, key, products); err != nil {
		u.logger.Warn("catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return products, nil
}

// Get fetches a single product and bumps its view counter. View accounting is
// best-effort and never fails the read.
func (u *CatalogUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.products.IncrementViews(ctx, id); err != nil {
		u.logger.Warn("view counter update failed", slog.String("product", id.String()), slog.String("error", err.Error()))
	} else {
		product.Views++
	}

	return product, nil
}
