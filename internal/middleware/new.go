package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"expense-tracker/internal/model"
	"expense-tracker/pkg/log"
	"expense-tracker/pkg/scope"

	"github.com/gin-gonic/gin"
)

const scopeKey = "scope"

// maxTrackedPrincipals bounds the per-user rate limiter cache.
const maxTrackedPrincipals = 10000

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	ratePerMin   int
	limiters     *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, scopeManager scope.Manager, ratePerMin int) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedPrincipals)
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		ratePerMin:   ratePerMin,
		limiters:     limiters,
	}
}

// GetScope returns the authenticated scope set by Auth. Zero value when
// the request is unauthenticated.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
