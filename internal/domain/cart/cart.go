package cart

import (
	"encoding/json"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StorageKey is the legacy persistence key prefix. The serialized value is a
// plain JSON array of line items; existing storefront clients read and write
// the same shape, so the field names below must not change.
const StorageKey = "cart"

// ProductSnapshot carries the catalog fields captured at add-to-cart time.
// The snapshot is never refreshed from the catalog afterwards.
type ProductSnapshot struct {
	ProductID   uuid.UUID
	Title       string
	UnitPrice   float64
	WeightLabel string
	ImageRef    string
}

// LineItem is one product-quantity-price tuple in the cart.
// JSON tags follow the legacy client contract.
type LineItem struct {
	ProductID   uuid.UUID `json:"_id"`
	Title       string    `json:"title"`
	UnitPrice   float64   `json:"price"`
	WeightLabel string    `json:"weight,omitempty"`
	ImageRef    string    `json:"image,omitempty"`
	Quantity    int       `json:"qty"`
}

// Cart is the ordered list of line items for one storefront session.
// At most one line exists per product id.
type Cart struct {
	lines []LineItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{lines: make([]LineItem, 0)}
}

// FromLines creates a cart from an existing line list
func FromLines(lines []LineItem) *Cart {
	if lines == nil {
		lines = make([]LineItem, 0)
	}
	return &Cart{lines: lines}
}

// FromJSON deserializes a cart from its persisted JSON array form.
// Malformed data yields an empty cart rather than an error, so a corrupt
// stored value never surfaces as a user-visible failure.
func FromJSON(data []byte) *Cart {
	if len(data) == 0 {
		return New()
	}
	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return New()
	}
	return FromLines(lines)
}

// ToJSON serializes the cart as a plain JSON array of line items
func (c *Cart) ToJSON() ([]byte, error) {
	return json.Marshal(c.lines)
}

// Lines returns a copy of the line items in order
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Find returns the line for a product id, or nil
func (c *Cart) Find(productID uuid.UUID) *LineItem {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return &c.lines[i]
		}
	}
	return nil
}

// AddOrIncrement adds a new line with quantity 1 capturing the product
// snapshot, or increments the existing line's quantity by 1.
func (c *Cart) AddOrIncrement(snapshot ProductSnapshot) error {
	if snapshot.ProductID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if line := c.Find(snapshot.ProductID); line != nil {
		line.Quantity++
		return nil
	}
	c.lines = append(c.lines, LineItem{
		ProductID:   snapshot.ProductID,
		Title:       snapshot.Title,
		UnitPrice:   snapshot.UnitPrice,
		WeightLabel: snapshot.WeightLabel,
		ImageRef:    snapshot.ImageRef,
		Quantity:    1,
	})
	return nil
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or below
// removes the line rather than zeroing it.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	if line := c.Find(productID); line != nil {
		line.Quantity = quantity
	}
}

// Remove deletes the line for a product id; no-op when absent
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Subtotal returns the sum of unit price times quantity over all lines
func (c *Cart) Subtotal() valueobject.Money {
	sum := decimal.Zero
	for _, line := range c.lines {
		price := decimal.NewFromFloat(line.UnitPrice)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return valueobject.NewMoneyINR(sum)
}

// Total returns the subtotal plus the flat delivery fee
func (c *Cart) Total(deliveryFee valueobject.Money) valueobject.Money {
	return c.Subtotal().MustAdd(deliveryFee)
}
