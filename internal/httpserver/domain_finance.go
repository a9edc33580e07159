package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"expense-tracker/internal/finance"
	financeHTTP "expense-tracker/internal/finance/delivery/http"
	financeRepo "expense-tracker/internal/finance/repository/postgre"
	financeUC "expense-tracker/internal/finance/usecase"
	"expense-tracker/internal/middleware"
)

// setupFinanceDomain initializes the finance domain and registers its routes.
// The use case is returned so the chatbot domain can execute money operations
// through the same validation layer.
func (srv HTTPServer) setupFinanceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (finance.UseCase, error) {
	// 1. Repository
	repo := financeRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := financeUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := financeHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/expenses, /api/v1/incomes
	financeHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Finance domain registered")
	return uc, nil
}
