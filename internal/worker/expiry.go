package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

const expiryCancelReason = "payment window expired"

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	UnpaidOrdersBefore(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
	CancelOrder(ctx context.Context, id, userID uuid.UUID, reason string) (*model.Order, error)
}

// ExpiryWorker sweeps unpaid orders past their payment window and cancels
// them concurrently, returning reserved stock to the catalog.
type ExpiryWorker struct {
	facade        StoreFacade
	pollInterval  time.Duration
	paymentWindow time.Duration
	batchSize     int
	workers       int
	logger        *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewExpiryWorker constructs the expiry worker pool.
func NewExpiryWorker(facade StoreFacade, pollInterval, paymentWindow time.Duration, batchSize, workers int, logger *slog.Logger) *ExpiryWorker {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ExpiryWorker{
		facade:        facade,
		pollInterval:  pollInterval,
		paymentWindow: paymentWindow,
		batchSize:     batchSize,
		workers:       workers,
		logger:        logger,
		jobs:          make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *ExpiryWorker) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *ExpiryWorker) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ExpiryWorker) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *ExpiryWorker) fetchAndDispatch(ctx context.Context) {
	cutoff := time.Now().Add(-p.paymentWindow)
	orders, err := p.facade.UnpaidOrdersBefore(ctx, cutoff, p.batchSize)
	if err != nil {
		p.logger.Error("fetch expired orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *ExpiryWorker) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *ExpiryWorker) handleOrder(ctx context.Context, order model.Order) {
	_, err := p.facade.CancelOrder(ctx, order.ID, order.UserID, expiryCancelReason)
	if err != nil {
		// The customer may have paid or cancelled between the sweep
		// and this job; both outcomes end the order's unpaid state.
		if errors.Is(err, domainErrors.ErrInvalidTransition) || errors.Is(err, domainErrors.ErrNotFound) {
			return
		}
		p.logger.Error("cancel expired order failed", slog.String("order", order.Number), slog.String("error", err.Error()))
		return
	}
	p.logger.Info("order cancelled after payment window", slog.String("order", order.Number))
}
