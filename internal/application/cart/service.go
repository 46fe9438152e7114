package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// Service handles session cart operations. Every successful mutation
// publishes exactly one cart.updated invalidation; AddItem additionally
// publishes cart.open_requested. Events fire after the store write returns,
// so a same-session observer that re-reads on the signal sees the new state.
type Service struct {
	store       cart.Store
	products    catalog.ProductRepository
	publisher   shared.EventPublisher
	deliveryFee valueobject.Money
	logger      *zap.Logger
}

// NewService creates a new cart Service
func NewService(
	store cart.Store,
	products catalog.ProductRepository,
	publisher shared.EventPublisher,
	deliveryFee valueobject.Money,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:       store,
		products:    products,
		publisher:   publisher,
		deliveryFee: deliveryFee,
		logger:      logger,
	}
}

// Get returns the cart for a session with computed totals
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Cart session ID is required")
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := ToCartResponse(c, s.deliveryFee)
	return &resp, nil
}

// AddItem adds a product to the cart or increments its quantity. The
// product's title, price, weight and image are snapshotted at this moment
// and never refreshed afterwards.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Cart session ID is required")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := cart.ProductSnapshot{
		ProductID:   product.ID,
		Title:       product.Name,
		UnitPrice:   product.PriceMoney().Amount().InexactFloat64(),
		WeightLabel: product.Weight,
		ImageRef:    product.PrimaryImage(),
	}
	if err := c.AddOrIncrement(snapshot); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.publish(ctx, cart.NewUpdatedEvent(sessionID), cart.NewOpenRequestedEvent(sessionID))

	resp := ToCartResponse(c, s.deliveryFee)
	return &resp, nil
}

// SetQuantity sets a line's quantity exactly; a quantity of zero or below
// removes the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID uuid.UUID, quantity int) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Cart session ID is required")
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(productID, quantity)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.publish(ctx, cart.NewUpdatedEvent(sessionID))

	resp := ToCartResponse(c, s.deliveryFee)
	return &resp, nil
}

// RemoveItem deletes a line from the cart; removing an absent product is a
// no-op that still persists and signals.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*CartResponse, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Cart session ID is required")
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(productID)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.publish(ctx, cart.NewUpdatedEvent(sessionID))

	resp := ToCartResponse(c, s.deliveryFee)
	return &resp, nil
}

func (s *Service) publish(ctx context.Context, events ...shared.DomainEvent) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish cart events", zap.Error(err))
	}
}
