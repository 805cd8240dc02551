package middleware

import (
	"net/http"
	"strings"

	"github.com/nikgolev/TicketGate/internal/auth"
	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

// Context keys set by Auth and read by handlers.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

const bearerPrefix = "Bearer "

// Auth validates the bearer token and stores the caller's identity in the
// request context.
func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.Request.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "access token required"},
			)
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not in the allowed set. Must
// run after Auth.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		current := domain.Role(c.GetString(CtxUserRole))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": "insufficient permissions"},
		)
	}
}
