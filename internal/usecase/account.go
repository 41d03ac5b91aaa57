package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/repository"
	pkgAuth "github.com/snstore/backend/internal/pkg/auth"
)

const resetTokenTTL = time.Hour

// AccountUseCase covers account self-service: password changes, recovery and
// account closing.
type AccountUseCase struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	hasher pkgAuth.PasswordHasher
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository, orders repository.OrderRepository, hasher pkgAuth.PasswordHasher) *AccountUseCase {
	return &AccountUseCase{users: users, orders: orders, hasher: hasher}
}

// ChangePassword replaces the password after verifying the current one.
func (u *AccountUseCase) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(usr.PasswordHash, current); err != nil {
		return domainErrors.ErrInvalidCredentials
	}

	if len(next) < 6 {
		return domainErrors.NewValidation("password")
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}

	return u.users.UpdatePassword(ctx, userID, hash)
}

// Close deletes the account. Accounts with orders still in progress cannot
// be closed. The addresses table cascades on user deletion, so the address
// book goes with the user in the same statement.
func (u *AccountUseCase) Close(ctx context.Context, userID uuid.UUID) error {
	active, err := u.orders.HasActive(ctx, userID)
	if err != nil {
		return err
	}
	if active {
		return domainErrors.ErrActiveOrders
	}

	return u.users.Delete(ctx, userID)
}

// RequestPasswordReset stores a short-lived opaque recovery token for the
// account and returns it for delivery.
func (u *AccountUseCase) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := u.users.SetResetToken(ctx, usr.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword consumes a recovery token and sets a new password.
func (u *AccountUseCase) ResetPassword(ctx context.Context, token, next string) error {
	if token == "" {
		return domainErrors.ErrNotFound
	}

	usr, err := u.users.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrNotFound
		}
		return err
	}

	if len(next) < 6 {
		return domainErrors.NewValidation("password")
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return err
	}

	return u.users.UpdatePassword(ctx, usr.ID, hash)
}
