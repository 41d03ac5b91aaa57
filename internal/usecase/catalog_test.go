package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
	testhelpers "github.com/snstore/backend/internal/test"
	"github.com/snstore/backend/internal/usecase"
)

// cacheStub records reads and writes through the catalog cache contract.
type cacheStub struct {
	data map[string][]byte
	err  error
	sets int
	hits int
}

func newCacheStub() *cacheStub {
	return &cacheStub{data: make(map[string][]byte)}
}

func (c *cacheStub) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *cacheStub) Set(ctx context.Context, key string, value any) error {
	if c.err != nil {
		return c.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	c.sets++
	return nil
}

func newCatalogFixture(products ...*model.Product) (*usecase.CatalogUseCase, *testhelpers.ProductRepositoryStub, *cacheStub) {
	repo := testhelpers.NewProductRepositoryStub(products...)
	cache := newCacheStub()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return usecase.NewCatalogUseCase(repo, cache, logger), repo, cache
}

func catalogProduct(title, category string, price string) *model.Product {
	return &model.Product{
		ID:       uuid.New(),
		Title:    title,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    5,
		IsActive: true,
	}
}

func TestCatalogUseCaseListCachesResults(t *testing.T) {
	uc, _, cache := newCatalogFixture(
		catalogProduct("Keyboard", "peripherals", "65.00"),
		catalogProduct("Mug", "kitchen", "10.00"),
	)
	ctx := context.Background()

	first, err := uc.List(ctx, "peripherals", "")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(first) != 1 || first[0].Title != "Keyboard" {
		t.Fatalf("unexpected listing %+v", first)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.List(ctx, "peripherals", "")
	if err != nil {
		t.Fatalf("second list returned error: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected cache hit on second read, got %d", cache.hits)
	}
	if len(second) != 1 {
		t.Fatalf("unexpected cached listing %+v", second)
	}
}

func TestCatalogUseCaseListSurvivesCacheFailure(t *testing.T) {
	uc, _, cache := newCatalogFixture(catalogProduct("Keyboard", "peripherals", "65.00"))
	cache.err = errors.New("redis down")

	products, err := uc.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected listing despite cache failure, got %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected listing %+v", products)
	}
}

func TestCatalogUseCaseFeatured(t *testing.T) {
	featured := catalogProduct("Keyboard", "peripherals", "65.00")
	featured.IsFeatured = true
	uc, _, cache := newCatalogFixture(featured, catalogProduct("Mug", "kitchen", "10.00"))

	products, err := uc.Featured(context.Background())
	if err != nil {
		t.Fatalf("featured returned error: %v", err)
	}
	if len(products) != 1 || products[0].Title != "Keyboard" {
		t.Fatalf("unexpected featured set %+v", products)
	}
	if cache.sets != 1 {
		t.Fatalf("expected featured set cached, got %d writes", cache.sets)
	}
}

func TestCatalogUseCaseGetBumpsViews(t *testing.T) {
	product := catalogProduct("Keyboard", "peripherals", "65.00")
	uc, repo, _ := newCatalogFixture(product)
	ctx := context.Background()

	found, err := uc.Get(ctx, product.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if found.Views != 1 {
		t.Fatalf("expected view counter bump, got %d", found.Views)
	}
	if repo.Products[product.ID].Views != 1 {
		t.Fatalf("expected stored views 1, got %d", repo.Products[product.ID].Views)
	}

	if _, err := uc.Get(ctx, uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
