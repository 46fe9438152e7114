package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
)

// OrderItemRequest is one checkout line. JSON keys follow the legacy cart
// array shape so the storefront can post its cart verbatim.
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"_id" binding:"required"`
	Title     string    `json:"title"`
	UnitPrice float64   `json:"price"`
	Quantity  int       `json:"qty" binding:"required"`
}

// PlaceOrderRequest represents the checkout form submission
type PlaceOrderRequest struct {
	Items           []OrderItemRequest    `json:"items" binding:"required"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Total           decimal.Decimal       `json:"total"`
	PaymentMethod   string                `json:"paymentMethod" binding:"required"`
}

// PlaceOrderResponse carries the identifiers the storefront needs next
type PlaceOrderResponse struct {
	OrderID uuid.UUID `json:"orderId"`
	Number  string    `json:"orderNumber"`
}

// CreateSessionRequest asks the gateway for a payment session
type CreateSessionRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	OrderID *uuid.UUID      `json:"orderDBId"`
}

// SessionResponse is the gateway payment session handed to the widget
type SessionResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyRequest carries the gateway callback fields for verification
type VerifyRequest struct {
	GatewayOrderID string    `json:"order_id" binding:"required"`
	PaymentID      string    `json:"payment_id" binding:"required"`
	Signature      string    `json:"signature" binding:"required"`
	OrderID        uuid.UUID `json:"orderDBId" binding:"required"`
}

// OrderItemResponse is one order line in API responses
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID             `json:"id"`
	Number          string                `json:"number"`
	Items           []OrderItemResponse   `json:"items"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Total           decimal.Decimal       `json:"total"`
	PaymentMethod   string                `json:"paymentMethod"`
	Status          string                `json:"status"`
	Paid            bool                  `json:"paid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    it.Amount(),
		})
	}

	return OrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total,
		PaymentMethod:   string(o.PaymentMethod),
		Status:          string(o.Status),
		Paid:            o.IsPaid(),
		PaidAt:          o.PaidAt,
		CreatedAt:       o.CreatedAt,
	}
}
