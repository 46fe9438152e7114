package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// ImageList stores product image URLs as a JSON array column.
type ImageList []string

// Value implements driver.Valuer
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", value)
	}
}

// Product represents a sellable item in the storefront catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Selling price
	MRP         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Strike-through list price
	Weight      string          `gorm:"type:varchar(50)"`                      // Display weight, e.g. "100g"
	Images      ImageList       `gorm:"type:jsonb"`
	Stock       int             `gorm:"not null;default:0"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active';index"`
	SortOrder   int             `gorm:"not null;default:0"`
	Categories  []Category      `gorm:"many2many:product_categories"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product. An empty slug is derived from
// the name.
func NewProduct(name, slug string, price valueobject.Money) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Price:             price.Amount(),
		MRP:               price.Amount(),
		Images:            ImageList{},
		Status:            ProductStatusActive,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's display information
func (p *Product) Update(name, description, weight string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Weight = weight
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateSlug changes the product's URL slug.
// Published links keep working only if callers redirect the old slug.
func (p *Product) UpdateSlug(slug string) error {
	if err := validateSlug(slug); err != nil {
		return err
	}

	p.Slug = slug
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetPrices sets the selling price and the strike-through MRP.
// MRP below the selling price is rejected since the storefront renders
// it as a discount.
func (p *Product) SetPrices(price, mrp valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if mrp.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "MRP cannot be negative")
	}
	if mrp.Amount().LessThan(price.Amount()) {
		return shared.NewDomainError("INVALID_PRICE", "MRP cannot be below the selling price")
	}

	p.Price = price.Amount()
	p.MRP = mrp.Amount()
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetImages replaces the product image URL list
func (p *Product) SetImages(images []string) {
	if images == nil {
		images = []string{}
	}
	p.Images = ImageList(images)
	p.UpdatedAt = time.Now()
}

// SetStock sets the available stock count
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	p.Stock = stock
	p.UpdatedAt = time.Now()

	return nil
}

// SetSortOrder sets the display order of the product
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.UpdatedAt = time.Now()
}

// SetCategories replaces the product's category assignments
func (p *Product) SetCategories(categories []Category) {
	p.Categories = categories
	p.UpdatedAt = time.Now()
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusInactive, ProductStatusActive))

	return nil
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusActive, ProductStatusInactive))

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// InStock returns true if the product has stock available
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// PriceMoney returns the selling price as Money
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.Price)
}

// MRPMoney returns the strike-through price as Money
func (p *Product) MRPMoney() valueobject.Money {
	return valueobject.NewMoneyINR(p.MRP)
}

// DiscountPercent returns the rounded discount off MRP.
// Returns 0 when the MRP is zero or equals the selling price.
func (p *Product) DiscountPercent() int {
	if p.MRP.IsZero() || p.MRP.Equal(p.Price) {
		return 0
	}
	discount := p.MRP.Sub(p.Price).Div(p.MRP).Mul(decimal.NewFromInt(100))
	return int(discount.Round(0).IntPart())
}

// PrimaryImage returns the first image URL, or empty when none are set
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// CategoryIDs returns the ids of the product's categories
func (p *Product) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
