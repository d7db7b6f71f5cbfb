package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harukik/secondhand-market-api/internal/auth"
	"github.com/harukik/secondhand-market-api/internal/constants"
	apierrors "github.com/harukik/secondhand-market-api/internal/errors"
)

// RequireAuth verifies the Bearer token and stores the asserted user ID
// in the request context. Verification is stateless; no user lookup
// happens here.
func RequireAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
