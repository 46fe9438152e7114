package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// Service handles the admin side of the order lifecycle
type Service struct {
	orders    order.Repository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new admin order Service
func NewService(orders order.Repository, publisher shared.EventPublisher, logger *zap.Logger) *Service {
	return &Service{orders: orders, publisher: publisher, logger: logger}
}

// List returns a page of orders, newest first
func (s *Service) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ListItemResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.PaymentMethod != "" {
		f.Filters["payment_method"] = filter.PaymentMethod
	}

	orders, err := s.orders.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.orders.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ListItemResponse, 0, len(orders))
	for i := range orders {
		items = append(items, ToListItemResponse(&orders[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

// Get returns the full order detail
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Response, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}

	resp := ToResponse(o)
	return &resp, nil
}

// UpdateStatus replaces the order status. Transitions are any-to-any; two
// concurrent updates race last-write-wins.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Response, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}

	if err := o.SetStatus(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	events := o.GetDomainEvents()
	o.ClearDomainEvents()
	if len(events) > 0 {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish order status events",
				zap.String("order_number", o.Number), zap.Error(err))
		}
	}

	resp := ToResponse(o)
	return &resp, nil
}

// Stats returns order counts per status for the admin dashboard
func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	resp := &StatsResponse{Counts: make(map[string]int64, len(counts))}
	for status, n := range counts {
		resp.Counts[string(status)] = n
		resp.Total += n
	}
	return resp, nil
}
