package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// Repository is the persistence port for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByNumber(ctx context.Context, number string) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// FindStalePending returns gateway orders still pending and unpaid that
	// were created before the cutoff. Used by the reconciliation sweeper.
	FindStalePending(ctx context.Context, cutoff time.Time, limit int) ([]Order, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	Save(ctx context.Context, o *Order) error
}
