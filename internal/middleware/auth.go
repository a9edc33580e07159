package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"expense-tracker/internal/model"
	"expense-tracker/pkg/response"
)

// Auth validates the Bearer token and attaches the resolved scope to the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}
