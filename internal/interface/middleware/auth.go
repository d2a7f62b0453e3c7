package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
	"github.com/takumi-dev/go-user-management/pkg/response"
)

const CtxUserIDKey = "userID"

// TokenFromRequest extracts the session token from the Authorization
// header (Bearer scheme) or the access_token cookie.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if raw, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(raw)
		}
	}
	if tok, err := c.Cookie("access_token"); err == nil {
		return tok
	}
	return ""
}

// Auth verifies the session token, including the revocation denylist,
// and injects the user ID into the Gin context.
func Auth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := TokenFromRequest(c)
		if raw == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		token := valueobject.AuthTokenFromString(raw)
		if !auth.IsTokenValid(c.Request.Context(), token) {
			response.Error[any](c, http.StatusUnauthorized, "invalid or revoked access token", nil)
			c.Abort()
			return
		}
		uid, err := auth.DecodeToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}
