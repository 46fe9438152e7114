package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/catalog"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// CategoryService handles category CRUD
type CategoryService struct {
	categories catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}
	exists, err := s.categories.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}

	category, err := catalog.NewCategory(req.Name, slug)
	if err != nil {
		return nil, err
	}
	if req.Image != "" {
		if err := category.Update(req.Name, req.Image); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update updates an existing category. Only supplied fields change.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	name := category.Name
	image := category.Image
	if req.Name != nil {
		name = *req.Name
	}
	if req.Image != nil {
		image = *req.Image
	}
	if err := category.Update(name, image); err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		exists, err := s.categories.ExistsBySlug(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
		}
		if err := category.UpdateSlug(*req.Slug); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}
	if req.Status != nil && string(category.Status) != *req.Status {
		switch *req.Status {
		case string(catalog.CategoryStatusActive):
			err = category.Activate()
		case string(catalog.CategoryStatusInactive):
			err = category.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category. Product assignments are detached, products stay.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return err
	}
	return nil
}

// Get returns a category by id
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// ListActive returns active categories in sort order for the storefront
func (s *CategoryService) ListActive(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, ToCategoryResponse(&categories[i]))
	}
	return items, nil
}

// List returns all categories for the back office
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 500
	f.OrderBy = "sort_order"
	f.OrderDir = "asc"

	categories, err := s.categories.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, ToCategoryResponse(&categories[i]))
	}
	return items, nil
}
