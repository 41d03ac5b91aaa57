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
)

type accountFixture struct {
	uc     *usecase.AccountUseCase
	users  *testhelpers.UserRepositoryStub
	orders *testhelpers.OrderRepositoryStub
	user   *model.User
}

func newAccountFixture(t *testing.T) accountFixture {
	t.Helper()
	users := testhelpers.NewUserRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}

	user, err := users.Create(context.Background(), "Maria Silva", "maria@example.com", "hash:secret123")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return accountFixture{
		uc:     usecase.NewAccountUseCase(users, orders, testhelpers.HasherStub{}),
		users:  users,
		orders: orders,
		user:   user,
	}
}

func TestAccountUseCaseChangePassword(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	if err := f.uc.ChangePassword(ctx, f.user.ID, "wrong", "newsecret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if err := f.uc.ChangePassword(ctx, f.user.ID, "secret123", "short"); err == nil {
		t.Fatal("expected validation error for short password")
	}

	if err := f.uc.ChangePassword(ctx, f.user.ID, "secret123", "newsecret"); err != nil {
		t.Fatalf("change password returned error: %v", err)
	}
	if f.users.ByID[f.user.ID].PasswordHash != "hash:newsecret" {
		t.Fatalf("password hash not replaced: %q", f.users.ByID[f.user.ID].PasswordHash)
	}

	if err := f.uc.ChangePassword(ctx, uuid.New(), "secret123", "newsecret"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}
}

func TestAccountUseCaseCloseDeletesUser(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	if err := f.uc.Close(ctx, f.user.ID); err != nil {
		t.Fatalf("close returned error: %v", err)
	}
	if _, err := f.users.GetByID(ctx, f.user.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected user deleted, got %v", err)
	}
	if err := f.uc.Close(ctx, f.user.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second close, got %v", err)
	}
}

func TestAccountUseCaseCloseBlockedByActiveOrders(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.orders.Orders = append(f.orders.Orders, model.Order{ID: uuid.New(), UserID: f.user.ID, Status: model.OrderStatusProcessing})

	if err := f.uc.Close(ctx, f.user.ID); !errors.Is(err, domainErrors.ErrActiveOrders) {
		t.Fatalf("expected ErrActiveOrders, got %v", err)
	}
	if _, err := f.users.GetByID(ctx, f.user.ID); err != nil {
		t.Fatalf("expected user to survive failed close: %v", err)
	}
}

func TestAccountUseCasePasswordRecovery(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	if _, err := f.uc.RequestPasswordReset(ctx, "nobody@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown email, got %v", err)
	}

	token, err := f.uc.RequestPasswordReset(ctx, " Maria@Example.com ")
	if err != nil {
		t.Fatalf("request reset returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected reset token")
	}

	if err := f.uc.ResetPassword(ctx, "", "newsecret"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for empty token, got %v", err)
	}
	if err := f.uc.ResetPassword(ctx, "bogus", "newsecret"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown token, got %v", err)
	}
	if err := f.uc.ResetPassword(ctx, token, "short"); err == nil {
		t.Fatal("expected validation error for short password")
	}

	if err := f.uc.ResetPassword(ctx, token, "newsecret"); err != nil {
		t.Fatalf("reset password returned error: %v", err)
	}
	if f.users.ByID[f.user.ID].PasswordHash != "hash:newsecret" {
		t.Fatalf("password hash not replaced after reset")
	}

	// consuming the password reset clears the token
	if err := f.uc.ResetPassword(ctx, token, "another1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected stale token to be rejected, got %v", err)
	}
}
