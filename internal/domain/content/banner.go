package content

import (
	"time"

	"github.com/happydigitalmarketings/priyam/internal/domain/shared"
)

// Banner is a homepage hero slide
type Banner struct {
	shared.BaseAggregateRoot
	Title     string `gorm:"type:varchar(200)"`
	Subtitle  string `gorm:"type:varchar(300)"`
	Image     string `gorm:"type:varchar(500);not null"`
	LinkURL   string `gorm:"type:varchar(500)"`
	SortOrder int    `gorm:"not null;default:0"`
	Active    bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Banner) TableName() string {
	return "banners"
}

// NewBanner creates a new active banner
func NewBanner(title, image, linkURL string) (*Banner, error) {
	if image == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Banner image is required")
	}

	return &Banner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Image:             image,
		LinkURL:           linkURL,
		Active:            true,
	}, nil
}

// Update updates the banner's display fields
func (b *Banner) Update(title, subtitle, image, linkURL string) error {
	if image == "" {
		return shared.NewDomainError("INVALID_IMAGE", "Banner image is required")
	}

	b.Title = title
	b.Subtitle = subtitle
	b.Image = image
	b.LinkURL = linkURL
	b.UpdatedAt = time.Now()

	return nil
}

// SetSortOrder sets the display order of the banner
func (b *Banner) SetSortOrder(order int) {
	b.SortOrder = order
	b.UpdatedAt = time.Now()
}

// SetActive toggles banner visibility on the storefront
func (b *Banner) SetActive(active bool) {
	b.Active = active
	b.UpdatedAt = time.Now()
}
