package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
	testhelpers "github.com/snstore/backend/internal/test"
	"github.com/snstore/backend/internal/usecase"
	"github.com/snstore/backend/internal/validation"
)

func newAddressUseCase() (*usecase.AddressUseCase, *testhelpers.AddressRepositoryStub) {
	repo := testhelpers.NewAddressRepositoryStub()
	return usecase.NewAddressUseCase(repo, validation.New()), repo
}

func validAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		PostalCode: "01310100",
		Street:     "Av Paulista",
		Number:     "1000",
		District:   "Bela Vista",
		City:       "Sao Paulo",
		State:      "SP",
	}
}

func TestAddressUseCaseCreateFirstBecomesDefault(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()
	userID := uuid.New()

	in := validAddressInput()
	in.IsDefault = false
	address, err := uc.Create(ctx, userID, in)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if !address.IsDefault {
		t.Fatal("expected first address to become default")
	}
	if address.Type != model.AddressTypeResidential {
		t.Fatalf("expected residential default type, got %s", address.Type)
	}
}

func TestAddressUseCaseCreateNormalizesInput(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()

	in := validAddressInput()
	in.PostalCode = "01310-100"
	in.State = " sp "
	address, err := uc.Create(ctx, uuid.New(), in)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if address.PostalCode != "01310100" {
		t.Fatalf("expected postal code digits only, got %q", address.PostalCode)
	}
	if address.State != "SP" {
		t.Fatalf("expected uppercased state, got %q", address.State)
	}
}

func TestAddressUseCaseCreateValidation(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*usecase.AddressInput)
		field  string
	}{
		{"short postal code", func(in *usecase.AddressInput) { in.PostalCode = "0131" }, "postal_code"},
		{"missing street", func(in *usecase.AddressInput) { in.Street = "" }, "street"},
		{"missing number", func(in *usecase.AddressInput) { in.Number = "" }, "number"},
		{"bad state", func(in *usecase.AddressInput) { in.State = "S1" }, "state"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validAddressInput()
			tc.mutate(&in)
			_, err := uc.Create(ctx, uuid.New(), in)
			ve, ok := domainErrors.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(ve.Fields) != 1 || ve.Fields[0] != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestAddressUseCaseNewDefaultDemotesOthers(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()
	userID := uuid.New()

	first, err := uc.Create(ctx, userID, validAddressInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := validAddressInput()
	second.Type = model.AddressTypeWork
	second.PostalCode = "20040020"
	second.IsDefault = true
	promoted, err := uc.Create(ctx, userID, second)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if !promoted.IsDefault {
		t.Fatal("expected second address to be default")
	}

	demoted, err := uc.Get(ctx, first.ID, userID)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if demoted.IsDefault {
		t.Fatal("expected first address demoted")
	}
}

func TestAddressUseCaseUpdate(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()
	userID := uuid.New()

	address, err := uc.Create(ctx, userID, validAddressInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	street := "Rua Augusta"
	badState := "XYZ"
	if _, err := uc.Update(ctx, address.ID, userID, usecase.AddressUpdate{State: &badState}); err == nil {
		t.Fatal("expected validation error on bad state")
	}

	updated, err := uc.Update(ctx, address.ID, userID, usecase.AddressUpdate{Street: &street})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Street != "Rua Augusta" {
		t.Fatalf("expected updated street, got %q", updated.Street)
	}
	if updated.PostalCode != "01310100" {
		t.Fatalf("expected untouched postal code, got %q", updated.PostalCode)
	}

	if _, err := uc.Update(ctx, address.ID, uuid.New(), usecase.AddressUpdate{Street: &street}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected foreign address to be invisible, got %v", err)
	}
}

func TestAddressUseCaseDeletePromotesNewest(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()
	userID := uuid.New()

	first, err := uc.Create(ctx, userID, validAddressInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := validAddressInput()
	second.PostalCode = "20040020"
	other, err := uc.Create(ctx, userID, second)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := uc.Delete(ctx, first.ID, userID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	remaining, err := uc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != other.ID {
		t.Fatalf("unexpected remaining addresses %+v", remaining)
	}
	if !remaining[0].IsDefault {
		t.Fatal("expected surviving address promoted to default")
	}
}

func TestAddressUseCaseSetDefault(t *testing.T) {
	uc, _ := newAddressUseCase()
	ctx := context.Background()
	userID := uuid.New()

	first, err := uc.Create(ctx, userID, validAddressInput())
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second := validAddressInput()
	second.PostalCode = "20040020"
	second.IsDefault = true
	if _, err := uc.Create(ctx, userID, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	promoted, err := uc.SetDefault(ctx, first.ID, userID)
	if err != nil {
		t.Fatalf("set default returned error: %v", err)
	}
	if !promoted.IsDefault {
		t.Fatal("expected promoted default")
	}

	addresses, err := uc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}

	if _, err := uc.SetDefault(ctx, uuid.New(), userID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
