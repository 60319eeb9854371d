package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"movievault/internal/auth"
)

const identityKey = "identity"

// authRequired gates every protected route. Missing, malformed or unverifiable
// credentials terminate the request with a structured 401 before any handler
// runs.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondErr(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			respondErr(c, http.StatusUnauthorized, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			respondErr(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// identity returns the claims attached by authRequired.
func identity(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
