package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Slug        string          `json:"slug" binding:"max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	MRP         decimal.Decimal `json:"mrp"`
	Weight      string          `json:"weight" binding:"max=50"`
	Images      []string        `json:"images"`
	Stock       *int            `json:"stock"`
	SortOrder   *int            `json:"sort_order"`
	CategoryIDs []uuid.UUID     `json:"category_ids"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Slug        *string          `json:"slug" binding:"omitempty,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	MRP         *decimal.Decimal `json:"mrp"`
	Weight      *string          `json:"weight" binding:"omitempty,max=50"`
	Images      []string         `json:"images"`
	Stock       *int             `json:"stock"`
	SortOrder   *int             `json:"sort_order"`
	CategoryIDs []uuid.UUID      `json:"category_ids"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ProductListFilter represents storefront/admin product list options
type ProductListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"` // category slug
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Slug            string             `json:"slug"`
	Description     string             `json:"description"`
	Price           decimal.Decimal    `json:"price"`
	MRP             decimal.Decimal    `json:"mrp"`
	DiscountPercent int                `json:"discount_percent"`
	Weight          string             `json:"weight"`
	Images          []string           `json:"images"`
	Stock           int                `json:"stock"`
	InStock         bool               `json:"in_stock"`
	Status          string             `json:"status"`
	SortOrder       int                `json:"sort_order"`
	Categories      []CategoryResponse `json:"categories"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Slug      string `json:"slug" binding:"max=200"`
	Image     string `json:"image"`
	SortOrder *int   `json:"sort_order"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug      *string `json:"slug" binding:"omitempty,max=200"`
	Image     *string `json:"image"`
	SortOrder *int    `json:"sort_order"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	SortOrder int       `json:"sort_order"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	categories := make([]CategoryResponse, 0, len(p.Categories))
	for i := range p.Categories {
		categories = append(categories, ToCategoryResponse(&p.Categories[i]))
	}

	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		MRP:             p.MRP,
		DiscountPercent: p.DiscountPercent(),
		Weight:          p.Weight,
		Images:          []string(p.Images),
		Stock:           p.Stock,
		InStock:         p.InStock(),
		Status:          string(p.Status),
		SortOrder:       p.SortOrder,
		Categories:      categories,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Image:     c.Image,
		SortOrder: c.SortOrder,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}
