package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/happydigitalmarketings/priyam/internal/interfaces/http/dto"
)

// Cart session plumbing. The storefront sends its session id in the
// X-Cart-Session header; a request without one gets a fresh id minted
// and echoed back so the client can persist it.
const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionKey    = "cart_session"

	maxSessionIDLength = 128
)

// CartSession resolves the cart session id for storefront routes
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if len(sessionID) > maxSessionIDLength {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid cart session"))
			return
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(CartSessionKey, sessionID)
		c.Writer.Header().Set(CartSessionHeader, sessionID)
		c.Next()
	}
}

// GetCartSession returns the resolved cart session id for the request
func GetCartSession(c *gin.Context) string {
	return c.GetString(CartSessionKey)
}
