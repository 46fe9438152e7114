package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/happydigitalmarketings/priyam/internal/application/cart"
	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/middleware"
)

// CartHandler handles the session cart endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.Service
	events      *CartEventsHandler
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.Service, events *CartEventsHandler) *CartHandler {
	return &CartHandler{cartService: cartService, events: events}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.Use(middleware.CartSession())
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:product_id", h.SetQuantity)
		cart.DELETE("/items/:product_id", h.RemoveItem)
		if h.events != nil {
			cart.GET("/events", h.events.Stream)
		}
	}
}

// Get returns the session's cart
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.cartService.Get(c.Request.Context(), middleware.GetCartSession(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds a product to the cart or bumps its quantity
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.cartService.AddItem(c.Request.Context(), middleware.GetCartSession(c), req.ProductID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetQuantity sets a line's quantity; zero or below removes the line
func (h *CartHandler) SetQuantity(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	var req cartapp.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.cartService.SetQuantity(c.Request.Context(), middleware.GetCartSession(c), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem removes a product from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		h.BadRequest(c, "Invalid product id")
		return
	}

	resp, err := h.cartService.RemoveItem(c.Request.Context(), middleware.GetCartSession(c), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
