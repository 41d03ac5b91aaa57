package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/snstore/backend/internal/domain/model"
)

// WorkerFacadeStub records expiry sweeps and cancellations. Unpaid orders
// are handed out once so a fast poll loop does not re-dispatch them.
type WorkerFacadeStub struct {
	mu sync.Mutex

	Unpaid    []model.Order
	UnpaidErr error
	CancelErr error
	Cancelled []uuid.UUID
	Reasons   []string
}

func (s *WorkerFacadeStub) UnpaidOrdersBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UnpaidErr != nil {
		return nil, s.UnpaidErr
	}
	orders := s.Unpaid
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
		s.Unpaid = s.Unpaid[limit:]
	} else {
		s.Unpaid = nil
	}
	return orders, nil
}

func (s *WorkerFacadeStub) CancelOrder(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CancelErr != nil {
		return nil, s.CancelErr
	}
	s.Cancelled = append(s.Cancelled, id)
	s.Reasons = append(s.Reasons, reason)
	return &model.Order{ID: id, UserID: userID, Status: model.OrderStatusCancelled, CancelReason: reason}, nil
}

// CancelledIDs returns a copy of recorded cancellations safe for assertions.
func (s *WorkerFacadeStub) CancelledIDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.Cancelled))
	copy(out, s.Cancelled)
	return out
}

// QuoterStub returns canned shipping options.
type QuoterStub struct {
	Options []model.ShippingOption
	Err     error
}

func (s QuoterStub) Quote(ctx context.Context, postalCode string) ([]model.ShippingOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Options != nil {
		return s.Options, nil
	}
	return []model.ShippingOption{{Service: "PAC", ETADays: 5, Cost: decimal.NewFromFloat(15.90)}}, nil
}
