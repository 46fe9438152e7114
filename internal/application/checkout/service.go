package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/order"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// ConfirmationMailer sends the order confirmation email
type ConfirmationMailer interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

const mailTimeout = 30 * time.Second

// Service handles checkout: order creation, the gateway payment branch and
// the terminal cart-clearing steps of both payment methods.
type Service struct {
	orders    order.Repository
	cartStore cart.Store
	gateway   order.PaymentGateway
	mailer    ConfirmationMailer
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewService creates a new checkout Service. The gateway may be nil when
// online payment is disabled; the COD branch keeps working.
func NewService(
	orders order.Repository,
	cartStore cart.Store,
	gateway order.PaymentGateway,
	mailer ConfirmationMailer,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		orders:    orders,
		cartStore: cartStore,
		gateway:   gateway,
		mailer:    mailer,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder creates an order in pending status. The confirmation email is
// fired off the critical path; the session cart is NOT cleared here. COD
// orders clear it at cod-confirm, gateway orders after verification.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResponse, error) {
	items := make([]order.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, order.ItemInput{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: decimal.NewFromFloat(it.UnitPrice),
		})
	}

	o, err := order.New(items, req.ShippingAddress, valueobject.NewMoneyINR(req.Total), order.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)
	s.sendConfirmation(o)

	return &PlaceOrderResponse{OrderID: o.ID, Number: o.Number}, nil
}

// CreatePaymentSession creates a gateway order for the amount. When an order
// id is supplied the gateway's order reference is attached to it.
func (s *Service) CreatePaymentSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error) {
	if s.gateway == nil {
		return nil, shared.NewDomainError("PAYMENT_DISABLED", "Online payment is not available")
	}

	receipt := ""
	var o *order.Order
	if req.OrderID != nil {
		var err error
		o, err = s.orders.FindByID(ctx, *req.OrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
			}
			return nil, err
		}
		receipt = o.Number
	}

	session, err := s.gateway.CreateSession(ctx, valueobject.NewMoneyINR(req.Amount), receipt)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		s.logger.Error("Payment session creation failed", zap.Error(err))
		return nil, shared.NewDomainError("GATEWAY_ERROR", "Could not reach the payment gateway, please retry")
	}

	if o != nil {
		if err := o.AttachGatewayOrder(session.ID); err != nil {
			return nil, err
		}
		if err := s.orders.Save(ctx, o); err != nil {
			return nil, err
		}
	}

	return &SessionResponse{ID: session.ID, Amount: session.Amount, Currency: session.Currency}, nil
}

// Verify checks the gateway payment signature and marks the order paid.
// MarkPaid is idempotent, so a retried callback is safe. A callback for an
// order the sweeper already cancelled is rejected and logged for a refund.
// The session cart is cleared only after verification succeeds.
func (s *Service) Verify(ctx context.Context, sessionID string, req VerifyRequest) (*OrderResponse, error) {
	if s.gateway == nil {
		return nil, shared.NewDomainError("PAYMENT_DISABLED", "Online payment is not available")
	}

	if err := s.gateway.VerifySignature(req.GatewayOrderID, req.PaymentID, req.Signature); err != nil {
		return nil, err
	}

	o, err := s.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}

	if err := o.MarkPaid(req.GatewayOrderID, req.PaymentID); err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "PAYMENT_ON_CANCELLED" {
			s.logger.Warn("verified payment arrived for a cancelled order, refund needed",
				zap.String("order_number", o.Number),
				zap.String("payment_id", req.PaymentID))
		}
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, o)
	s.clearCart(ctx, sessionID)

	resp := ToOrderResponse(o)
	return &resp, nil
}

// ConfirmCOD is the terminal step of the cash-on-delivery branch: it clears
// the session cart and signals the cart observers.
func (s *Service) ConfirmCOD(ctx context.Context, sessionID string, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	if o.PaymentMethod != order.PaymentMethodCOD {
		return nil, shared.NewDomainError("INVALID_STATE", "Order is not a cash-on-delivery order")
	}

	s.clearCart(ctx, sessionID)

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Get returns the confirmation page data for an order
func (s *Service) Get(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

func (s *Service) publishEvents(ctx context.Context, o *order.Order) {
	events := o.GetDomainEvents()
	o.ClearDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish order events",
			zap.String("order_number", o.Number), zap.Error(err))
	}
}

func (s *Service) clearCart(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.cartStore.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear session cart",
			zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, cart.NewUpdatedEvent(sessionID)); err != nil {
		s.logger.Warn("Failed to publish cart invalidation",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// sendConfirmation emails the customer off the request path. Failures are
// logged and never surfaced: the order stands regardless.
func (s *Service) sendConfirmation(o *order.Order) {
	if s.mailer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()
		if err := s.mailer.SendOrderConfirmation(ctx, o); err != nil {
			s.logger.Warn("Order confirmation email failed",
				zap.String("order_number", o.Number), zap.Error(err))
		}
	}()
}
