package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared/valueobject"
)

// ProductService handles product CRUD and the storefront product queries
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}
	exists, err := s.products.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
	}

	product, err := catalog.NewProduct(req.Name, slug, valueobject.NewMoneyINR(req.Price))
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.Weight != "" {
		if err := product.Update(req.Name, req.Description, req.Weight); err != nil {
			return nil, err
		}
	}
	if !req.MRP.IsZero() {
		if err := product.SetPrices(valueobject.NewMoneyINR(req.Price), valueobject.NewMoneyINR(req.MRP)); err != nil {
			return nil, err
		}
	}
	if req.Images != nil {
		product.SetImages(req.Images)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}
	if len(req.CategoryIDs) > 0 {
		categories, err := s.resolveCategories(ctx, req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		product.SetCategories(categories)
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update updates an existing product. Only supplied fields change.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	name := product.Name
	description := product.Description
	weight := product.Weight
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Weight != nil {
		weight = *req.Weight
	}
	if err := product.Update(name, description, weight); err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != product.Slug {
		exists, err := s.products.ExistsBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
		}
		if err := product.UpdateSlug(*req.Slug); err != nil {
			return nil, err
		}
	}

	if req.Price != nil || req.MRP != nil {
		price := product.PriceMoney()
		mrp := product.MRPMoney()
		if req.Price != nil {
			price = valueobject.NewMoneyINR(*req.Price)
		}
		if req.MRP != nil {
			mrp = valueobject.NewMoneyINR(*req.MRP)
		}
		if err := product.SetPrices(price, mrp); err != nil {
			return nil, err
		}
	}

	if req.Images != nil {
		product.SetImages(req.Images)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}
	if req.CategoryIDs != nil {
		categories, err := s.resolveCategories(ctx, req.CategoryIDs)
		if err != nil {
			return nil, err
		}
		product.SetCategories(categories)
	}
	if req.Status != nil && string(product.Status) != *req.Status {
		switch *req.Status {
		case string(catalog.ProductStatusActive):
			err = product.Activate()
		case string(catalog.ProductStatusInactive):
			err = product.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return err
	}
	return nil
}

// Get returns a product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetBySlug returns an active product by slug for the storefront product page
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
		}
		return nil, err
	}
	if !product.IsActive() {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// ListActive returns active products for the storefront, optionally filtered
// by category slug and search text.
func (s *ProductService) ListActive(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	var (
		products []catalog.Product
		err      error
	)
	if filter.Category != "" {
		category, catErr := s.categories.FindBySlug(ctx, filter.Category)
		if catErr != nil {
			if errors.Is(catErr, shared.ErrNotFound) {
				return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
			}
			return nil, catErr
		}
		products, err = s.products.FindByCategory(ctx, category.ID, f)
	} else {
		products, err = s.products.FindActive(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}

	page := shared.NewPaginated(items, int64(len(items)), f.Page, f.PageSize)
	return &page, nil
}

// List returns all products for the back office
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search

	products, err := s.products.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}

	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

func (s *ProductService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]catalog.Category, error) {
	categories := make([]catalog.Category, 0, len(ids))
	for _, id := range ids {
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
			}
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}
