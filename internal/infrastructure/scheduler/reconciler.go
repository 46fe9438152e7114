package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/infrastructure/config"
)

// PendingOrderReconciler cancels gateway orders that were created but never
// paid. Customers who abandon the payment page leave pending rows behind;
// this sweeps them once they are older than the configured TTL.
type PendingOrderReconciler struct {
	config    config.ReconcilerConfig
	orders    order.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewPendingOrderReconciler creates a new reconciler
func NewPendingOrderReconciler(
	cfg config.ReconcilerConfig,
	orders order.Repository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *PendingOrderReconciler {
	return &PendingOrderReconciler{
		config:    cfg,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
	}
}

// Start starts the reconciler loop
func (r *PendingOrderReconciler) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = true
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.runLoop(ctx)

	r.logger.Info("Pending order reconciler started",
		zap.Duration("check_interval", r.config.CheckInterval),
		zap.Duration("pending_ttl", r.config.PendingTTL),
		zap.Int("batch_size", r.config.BatchSize),
	)

	return nil
}

// Stop stops the reconciler loop
func (r *PendingOrderReconciler) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = false
	r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("Pending order reconciler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *PendingOrderReconciler) runLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RunOnce(ctx); err != nil {
				r.logger.Error("Reconciler sweep failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs a single sweep. It cancels every stale pending order it
// finds, up to the batch size, and reports how many were cancelled through
// the returned error being nil.
func (r *PendingOrderReconciler) RunOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-r.config.PendingTTL)

	stale, err := r.orders.FindStalePending(ctx, cutoff, r.config.BatchSize)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	cancelled := 0
	for i := range stale {
		o := &stale[i]
		if err := o.Cancel(); err != nil {
			r.logger.Warn("Skipping order that cannot be cancelled",
				zap.String("order_number", o.Number),
				zap.Error(err))
			continue
		}
		if err := r.orders.Save(ctx, o); err != nil {
			r.logger.Error("Failed to persist cancelled order",
				zap.String("order_number", o.Number),
				zap.Error(err))
			continue
		}

		events := o.GetDomainEvents()
		o.ClearDomainEvents()
		if err := r.publisher.Publish(ctx, events...); err != nil {
			r.logger.Warn("Failed to publish cancellation events",
				zap.String("order_number", o.Number),
				zap.Error(err))
		}
		cancelled++
	}

	r.logger.Info("Reconciler sweep complete",
		zap.Int("found", len(stale)),
		zap.Int("cancelled", cancelled))
	return nil
}
