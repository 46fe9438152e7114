package handler

import (
	"github.com/gin-gonic/gin"

	contentapp "github.com/happydigitalmarketings/priyam/internal/application/content"
)

// PostHandler handles blog post endpoints
type PostHandler struct {
	BaseHandler
	postService *contentapp.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *contentapp.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterRoutes registers storefront blog routes
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/content/posts", h.ListPublished)
	rg.GET("/content/posts/:slug", h.GetBySlug)
}

// RegisterAdminRoutes registers admin blog routes
func (h *PostHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/admin/posts")
	{
		posts.GET("", h.List)
		posts.POST("", h.Create)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

// ListPublished returns published posts, newest first
func (h *PostHandler) ListPublished(c *gin.Context) {
	var filter contentapp.PostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	items, err := h.postService.ListPublished(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// GetBySlug returns a published post by its slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	resp, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns all posts for the back office, drafts included
func (h *PostHandler) List(c *gin.Context) {
	var filter contentapp.PostListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Create creates a post
func (h *PostHandler) Create(c *gin.Context) {
	var req contentapp.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.postService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns one post
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a post
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req contentapp.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.postService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a post
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
