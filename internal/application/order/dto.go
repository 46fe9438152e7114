package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/order"
)

// ListFilter represents filter options for the admin order list
type ListFilter struct {
	Status        string `form:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	PaymentMethod string `form:"payment_method" binding:"omitempty,oneof=cod razorpay"`
	Search        string `form:"search"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

// ItemResponse is one order line in admin responses
type ItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
}

// Response represents a full order in admin responses
type Response struct {
	ID              uuid.UUID             `json:"id"`
	Number          string                `json:"number"`
	Items           []ItemResponse        `json:"items"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	Total           decimal.Decimal       `json:"total"`
	PaymentMethod   string                `json:"paymentMethod"`
	Status          string                `json:"status"`
	GatewayOrderID  string                `json:"gatewayOrderId,omitempty"`
	Paid            bool                  `json:"paid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// ListItemResponse is the compact list row for the admin order table
type ListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	CustomerName  string          `json:"customerName"`
	ItemCount     int             `json:"itemCount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Paid          bool            `json:"paid"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// StatsResponse reports order counts per status
type StatsResponse struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// ToResponse converts a domain Order to the full admin Response
func ToResponse(o *order.Order) Response {
	items := make([]ItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemResponse{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    it.Amount(),
		})
	}

	return Response{
		ID:              o.ID,
		Number:          o.Number,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total,
		PaymentMethod:   string(o.PaymentMethod),
		Status:          string(o.Status),
		GatewayOrderID:  o.GatewayOrderID,
		Paid:            o.IsPaid(),
		PaidAt:          o.PaidAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToListItemResponse converts a domain Order to the compact list row
func ToListItemResponse(o *order.Order) ListItemResponse {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}

	return ListItemResponse{
		ID:            o.ID,
		Number:        o.Number,
		CustomerName:  o.ShippingAddress.FirstName + " " + o.ShippingAddress.LastName,
		ItemCount:     count,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		Paid:          o.IsPaid(),
		CreatedAt:     o.CreatedAt,
	}
}
