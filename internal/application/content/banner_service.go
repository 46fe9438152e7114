package content

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/domain/content"
	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// BannerService handles homepage banner management
type BannerService struct {
	banners content.BannerRepository
}

// NewBannerService creates a new BannerService
func NewBannerService(banners content.BannerRepository) *BannerService {
	return &BannerService{banners: banners}
}

// Create creates a new banner
func (s *BannerService) Create(ctx context.Context, req CreateBannerRequest) (*BannerResponse, error) {
	banner, err := content.NewBanner(req.Title, req.Image, req.LinkURL)
	if err != nil {
		return nil, err
	}
	if req.Subtitle != "" {
		if err := banner.Update(req.Title, req.Subtitle, req.Image, req.LinkURL); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}

	if err := s.banners.Save(ctx, banner); err != nil {
		return nil, err
	}

	resp := ToBannerResponse(banner)
	return &resp, nil
}

// Update updates an existing banner. Only supplied fields change.
func (s *BannerService) Update(ctx context.Context, id uuid.UUID, req UpdateBannerRequest) (*BannerResponse, error) {
	banner, err := s.banners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("BANNER_NOT_FOUND", "Banner not found")
		}
		return nil, err
	}

	title := banner.Title
	subtitle := banner.Subtitle
	image := banner.Image
	linkURL := banner.LinkURL
	if req.Title != nil {
		title = *req.Title
	}
	if req.Subtitle != nil {
		subtitle = *req.Subtitle
	}
	if req.Image != nil {
		image = *req.Image
	}
	if req.LinkURL != nil {
		linkURL = *req.LinkURL
	}
	if err := banner.Update(title, subtitle, image, linkURL); err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		banner.SetSortOrder(*req.SortOrder)
	}
	if req.Active != nil {
		banner.SetActive(*req.Active)
	}

	if err := s.banners.Save(ctx, banner); err != nil {
		return nil, err
	}

	resp := ToBannerResponse(banner)
	return &resp, nil
}

// Delete removes a banner
func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("BANNER_NOT_FOUND", "Banner not found")
		}
		return err
	}
	return nil
}

// Get returns a banner by id
func (s *BannerService) Get(ctx context.Context, id uuid.UUID) (*BannerResponse, error) {
	banner, err := s.banners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("BANNER_NOT_FOUND", "Banner not found")
		}
		return nil, err
	}

	resp := ToBannerResponse(banner)
	return &resp, nil
}

// ListActive returns visible banners in sort order for the storefront
func (s *BannerService) ListActive(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.banners.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		items = append(items, ToBannerResponse(&banners[i]))
	}
	return items, nil
}

// List returns all banners for the back office
func (s *BannerService) List(ctx context.Context) ([]BannerResponse, error) {
	f := shared.DefaultFilter()
	f.PageSize = 100
	f.OrderBy = "sort_order"
	f.OrderDir = "asc"

	banners, err := s.banners.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]BannerResponse, 0, len(banners))
	for i := range banners {
		items = append(items, ToBannerResponse(&banners[i]))
	}
	return items, nil
}
