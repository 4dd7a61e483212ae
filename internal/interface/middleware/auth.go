package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharely/sharely/internal/application"
	"github.com/sharely/sharely/pkg/response"
)

// CtxUserIDKey is the Gin context key under which the authenticated user id
// is stored. The token itself is kept under CtxTokenKey so logout can
// revoke the exact credential that was presented.
const (
	CtxUserIDKey = "userID"
	CtxTokenKey  = "authToken"
)

// Auth validates the Authorization bearer token through the bound
// AuthService and injects the user id into the Gin context.
func Auth(svc application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		uid, err := svc.ParseToken(c.Request.Context(), token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid bearer token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
