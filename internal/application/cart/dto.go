package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/cart"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetQuantityRequest represents a request to set a line's quantity
type SetQuantityRequest struct {
	Quantity int `json:"qty"`
}

// LineResponse represents one cart line in API responses.
// JSON keys follow the legacy client contract.
type LineResponse struct {
	ProductID   uuid.UUID       `json:"_id"`
	Title       string          `json:"title"`
	UnitPrice   float64         `json:"price"`
	WeightLabel string          `json:"weight,omitempty"`
	ImageRef    string          `json:"image,omitempty"`
	Quantity    int             `json:"qty"`
	Amount      decimal.Decimal `json:"amount"`
}

// CartResponse represents the cart with computed totals
type CartResponse struct {
	Items       []LineResponse  `json:"items"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// ToCartResponse converts a domain Cart to CartResponse
func ToCartResponse(c *cart.Cart, deliveryFee valueobject.Money) CartResponse {
	lines := c.Lines()
	items := make([]LineResponse, 0, len(lines))
	for _, line := range lines {
		price := decimal.NewFromFloat(line.UnitPrice)
		items = append(items, LineResponse{
			ProductID:   line.ProductID,
			Title:       line.Title,
			UnitPrice:   line.UnitPrice,
			WeightLabel: line.WeightLabel,
			ImageRef:    line.ImageRef,
			Quantity:    line.Quantity,
			Amount:      price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	return CartResponse{
		Items:       items,
		ItemCount:   c.ItemCount(),
		Subtotal:    c.Subtotal().Amount(),
		DeliveryFee: deliveryFee.Amount(),
		Total:       c.Total(deliveryFee).Amount(),
	}
}
