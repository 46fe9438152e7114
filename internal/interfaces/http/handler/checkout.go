package handler

import (
	"github.com/gin-gonic/gin"

	checkoutapp "github.com/happydigitalmarketings/priyam/internal/application/checkout"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
)

// CheckoutHandler handles order placement and the payment branch
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.CartSession())
	{
		orders.POST("", h.PlaceOrder)
		orders.POST("/verify", h.Verify)
		orders.POST("/:id/cod-confirm", h.ConfirmCOD)
		orders.GET("/:id", h.Get)
	}

	payment := rg.Group("/payment")
	{
		payment.POST("/session", h.CreatePaymentSession)
	}
}

// PlaceOrder creates a pending order from the submitted cart contents
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req checkoutapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.checkoutService.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// CreatePaymentSession creates a gateway order for the hosted widget
func (h *CheckoutHandler) CreatePaymentSession(c *gin.Context) {
	var req checkoutapp.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.checkoutService.CreatePaymentSession(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Verify checks the gateway callback signature and marks the order paid
func (h *CheckoutHandler) Verify(c *gin.Context) {
	var req checkoutapp.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.checkoutService.Verify(c.Request.Context(), middleware.GetCartSession(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ConfirmCOD finishes the cash-on-delivery branch for an order
func (h *CheckoutHandler) ConfirmCOD(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.checkoutService.ConfirmCOD(c.Request.Context(), middleware.GetCartSession(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns order confirmation data
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.checkoutService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
