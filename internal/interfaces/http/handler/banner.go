package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/happydigitalmarketings/priyam/internal/application/content"
)

// BannerHandler handles banner endpoints
type BannerHandler struct {
	BaseHandler
	bannerService *contentapp.BannerService
}

// NewBannerHandler creates a new BannerHandler
func NewBannerHandler(bannerService *contentapp.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// RegisterRoutes registers storefront banner routes
func (h *BannerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/banners", h.ListActive)
}

// RegisterAdminRoutes registers admin banner routes
func (h *BannerHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	banners := rg.Group("/admin/banners")
	{
		banners.GET("", h.List)
		banners.POST("", h.Create)
		banners.GET("/:id", h.Get)
		banners.PUT("/:id", h.Update)
		banners.DELETE("/:id", h.Delete)
	}
}

// ListActive returns active banners in display order
func (h *BannerHandler) ListActive(c *gin.Context) {
	items, err := h.bannerService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// List returns all banners for the back office
func (h *BannerHandler) List(c *gin.Context) {
	items, err := h.bannerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Create creates a banner
func (h *BannerHandler) Create(c *gin.Context) {
	var req contentapp.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bannerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one banner
func (h *BannerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.bannerService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a banner
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req contentapp.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.bannerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a banner
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
