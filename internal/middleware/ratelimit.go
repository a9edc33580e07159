package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"expense-tracker/pkg/response"
)

// RateLimit enforces a per-user request budget. Must run after Auth so the
// scope is available; unauthenticated requests fall back to the client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		key := GetScope(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
