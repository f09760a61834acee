package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for claims extracted by the token middleware.
const (
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// tokenMiddleware fails closed: missing header is 401, a present but
// invalid/expired token is 403. The header carries either a bare token
// (legacy clients) or the usual "Bearer <token>" form.
func (h *Handler) tokenMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(ctxUserEmail, claims.Email)
	c.Set(ctxUserRole, claims.Role)
	c.Next()
}
