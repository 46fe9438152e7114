package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/happydigitalmarketings/priyam/internal/application/order"
)

// OrderAdminHandler handles the back-office order endpoints
type OrderAdminHandler struct {
	BaseHandler
	orderService *orderapp.Service
}

// NewOrderAdminHandler creates a new OrderAdminHandler
func NewOrderAdminHandler(orderService *orderapp.Service) *OrderAdminHandler {
	return &OrderAdminHandler{orderService: orderService}
}

// RegisterAdminRoutes registers admin order routes
func (h *OrderAdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/admin/orders")
	{
		orders.GET("", h.List)
		orders.GET("/stats", h.Stats)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id/status", h.UpdateStatus)
	}
}

// List returns orders, newest first, with status and payment filters
func (h *OrderAdminHandler) List(c *gin.Context) {
	var filter orderapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get returns one order with its lines and payment details
func (h *OrderAdminHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateStatus replaces the order's status
func (h *OrderAdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Stats returns order counts per status
func (h *OrderAdminHandler) Stats(c *gin.Context) {
	resp, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
