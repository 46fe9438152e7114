package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// Status represents the fulfilment status of an order.
// Transitions are admin-driven and deliberately permissive: any status may
// be set from any other. The original back-office exposed a plain selector
// with no workflow enforcement and that behavior is kept.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "cod"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodRazorpay
}

// Item is a snapshot of one ordered product. Prices are captured at order
// time; later catalog changes never affect an existing order.
type Item struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Title     string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// Amount returns quantity times unit price
func (i *Item) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the durable record created at checkout. It is the aggregate root
// for the order lifecycle: created in pending status, optionally marked paid
// by the gateway verification flow, and moved between statuses by admins.
type Order struct {
	shared.BaseAggregateRoot
	Number          string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Items           []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress ShippingAddress `gorm:"type:jsonb;not null"`
	Total           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(20);not null"`
	Status          Status          `gorm:"type:varchar(20);not null;default:'pending';index"`

	// Gateway branch bookkeeping. Empty for COD orders.
	GatewayOrderID   string     `gorm:"type:varchar(100);index"`
	GatewayPaymentID string     `gorm:"type:varchar(100)"`
	PaidAt           *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// ItemInput carries one cart line into order creation
type ItemInput struct {
	ProductID uuid.UUID
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// New creates a new order in pending status.
//
// The total is client-supplied and stored as provided: prices are locked at
// cart time and the server does not recompute against the live catalog.
func New(items []ItemInput, address ShippingAddress, total valueobject.Money, method PaymentMethod) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ITEMS", "Items are required")
	}
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Total must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            generateNumber(),
		ShippingAddress:   address,
		Total:             total.Amount(),
		PaymentMethod:     method,
		Status:            StatusPending,
	}

	for _, in := range items {
		if in.ProductID == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
		}
		if in.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		o.Items = append(o.Items, Item{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: in.ProductID,
			Title:     in.Title,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			CreatedAt: o.CreatedAt,
		})
	}

	o.AddDomainEvent(NewCreatedEvent(o))
	return o, nil
}

// TotalMoney returns the order total as Money
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyINR(o.Total)
}

// IsPaid reports whether a gateway payment has been recorded
func (o *Order) IsPaid() bool {
	return o.PaidAt != nil
}

// AttachGatewayOrder links the gateway's own order id once a payment session
// has been created for this order.
func (o *Order) AttachGatewayOrder(gatewayOrderID string) error {
	if o.PaymentMethod != PaymentMethodRazorpay {
		return shared.NewDomainError("INVALID_STATE", "Order is not a gateway order")
	}
	if gatewayOrderID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Gateway order ID cannot be empty")
	}
	o.GatewayOrderID = gatewayOrderID
	o.UpdatedAt = time.Now()
	return nil
}

// MarkPaid records a verified gateway payment. The call is idempotent:
// repeating it with the same payment id succeeds without changing state,
// so a retried verification request cannot double-fulfil the order.
// A different payment id on an already-paid order is rejected, and so is
// a payment landing on an order that was cancelled while it sat unpaid.
// The charge against a cancelled order needs a refund, not a fulfilment.
func (o *Order) MarkPaid(gatewayOrderID, paymentID string) error {
	if paymentID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Payment ID cannot be empty")
	}
	if o.IsPaid() {
		if o.GatewayPaymentID == paymentID {
			return nil
		}
		return shared.NewDomainError("ALREADY_PAID", "Order is already paid with a different payment")
	}
	if o.Status == StatusCancelled {
		return shared.NewDomainError("PAYMENT_ON_CANCELLED", "Order was cancelled before the payment completed")
	}

	now := time.Now()
	o.GatewayOrderID = gatewayOrderID
	o.GatewayPaymentID = paymentID
	o.PaidAt = &now
	o.UpdatedAt = now

	o.AddDomainEvent(NewPaidEvent(o))
	return nil
}

// SetStatus replaces the order status. Only enum membership is validated;
// any-to-any transitions are allowed (see Status).
func (o *Order) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if o.Status == status {
		return nil
	}

	previous := o.Status
	o.Status = status
	o.UpdatedAt = time.Now()

	o.AddDomainEvent(NewStatusChangedEvent(o, previous))
	return nil
}

// Cancel marks the order cancelled. Used by the pending-payment sweeper.
func (o *Order) Cancel() error {
	return o.SetStatus(StatusCancelled)
}

// generateNumber builds a short human-facing order reference.
// Uniqueness comes from the uuid; the reference is for emails and support.
func generateNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + suffix[:8]
}
