package usecase

import (
	"context"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/snstore/backend/internal/domain/model"
	"github.com/snstore/backend/internal/domain/repository"
	"github.com/snstore/backend/internal/validation"
)

// AddressInput carries the caller-supplied fields for a new address.
type AddressInput struct {
	Type       model.AddressType `json:"type"`
	PostalCode string            `json:"postal_code" validate:"required,len=8,numeric"`
	Street     string            `json:"street" validate:"required"`
	Number     string            `json:"number" validate:"required"`
	Complement string            `json:"complement"`
	District   string            `json:"district" validate:"required"`
	City       string            `json:"city" validate:"required"`
	State      string            `json:"state" validate:"required,len=2,alpha"`
	Reference  string            `json:"reference"`
	IsDefault  bool              `json:"is_default"`
}

// AddressUpdate carries a partial update; nil fields are left untouched.
type AddressUpdate struct {
	Type       *model.AddressType `json:"type"`
	PostalCode *string            `json:"postal_code"`
	Street     *string            `json:"street"`
	Number     *string            `json:"number"`
	Complement *string            `json:"complement"`
	District   *string            `json:"district"`
	City       *string            `json:"city"`
	State      *string            `json:"state"`
	Reference  *string            `json:"reference"`
	IsDefault  *bool              `json:"is_default"`
}

// AddressUseCase owns the per-user address book and its single-default
// invariant.
type AddressUseCase struct {
	addresses repository.AddressRepository
	validate  *validatorv10.Validate
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository, validate *validatorv10.Validate) *AddressUseCase {
	return &AddressUseCase{addresses: addresses, validate: validate}
}

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeAddressInput(in *AddressInput) {
	in.PostalCode = digitsOnly(in.PostalCode)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	if in.Type == "" {
		in.Type = model.AddressTypeResidential
	}
}

// Create validates and stores a new address. The user's first address is
// forced to be the default regardless of the caller's input.
func (u *AddressUseCase) Create(ctx context.Context, userID uuid.UUID, in AddressInput) (*model.Address, error) {
	normalizeAddressInput(&in)
	if err := validation.Check(u.validate, in); err != nil {
		return nil, err
	}

	count, err := u.addresses.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		in.IsDefault = true
	}

	address := &model.Address{
		UserID:     userID,
		Type:       in.Type,
		PostalCode: in.PostalCode,
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
		District:   in.District,
		City:       in.City,
		State:      in.State,
		Reference:  in.Reference,
		IsDefault:  in.IsDefault,
	}

	return u.addresses.Create(ctx, address)
}

// Update overlays the supplied fields on an existing address and re-validates
// the result. Identity, ownership and creation time are never touched.
func (u *AddressUseCase) Update(ctx context.Context, id, userID uuid.UUID, upd AddressUpdate) (*model.Address, error) {
	address, err := u.addresses.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if upd.Type != nil {
		address.Type = *upd.Type
	}
	if upd.PostalCode != nil {
		address.PostalCode = *upd.PostalCode
	}
	if upd.Street != nil {
		address.Street = *upd.Street
	}
	if upd.Number != nil {
		address.Number = *upd.Number
	}
	if upd.Complement != nil {
		address.Complement = *upd.Complement
	}
	if upd.District != nil {
		address.District = *upd.District
	}
	if upd.City != nil {
		address.City = *upd.City
	}
	if upd.State != nil {
		address.State = *upd.State
	}
	if upd.Reference != nil {
		address.Reference = *upd.Reference
	}
	if upd.IsDefault != nil {
		address.IsDefault = *upd.IsDefault
	}

	in := AddressInput{
		Type:       address.Type,
		PostalCode: address.PostalCode,
		Street:     address.Street,
		Number:     address.Number,
		Complement: address.Complement,
		District:   address.District,
		City:       address.City,
		State:      address.State,
		Reference:  address.Reference,
		IsDefault:  address.IsDefault,
	}
	normalizeAddressInput(&in)
	if err := validation.Check(u.validate, in); err != nil {
		return nil, err
	}

	address.Type = in.Type
	address.PostalCode = in.PostalCode
	address.State = in.State

	return u.addresses.Update(ctx, address)
}

// Delete removes an address; when the default address is removed the storage
// layer promotes the newest remaining address of the same user.
func (u *AddressUseCase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return u.addresses.Delete(ctx, id, userID)
}

// SetDefault makes the target address the user's only default.
func (u *AddressUseCase) SetDefault(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	return u.addresses.SetDefault(ctx, id, userID)
}

// Get fetches a single address scoped to its owner.
func (u *AddressUseCase) Get(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	return u.addresses.GetByID(ctx, id, userID)
}

// List returns the address book sorted default-first, then newest-first.
func (u *AddressUseCase) List(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}
