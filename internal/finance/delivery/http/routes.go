package http

import (
	"expense-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", mw.Auth(), h.CreateExpense)
		expenses.GET("", mw.Auth(), h.ListExpenses)
		expenses.GET("/distribution", mw.Auth(), h.CategoryDistribution)
		expenses.GET("/:id", mw.Auth(), h.DetailExpense)
		expenses.PUT("/:id", mw.Auth(), h.UpdateExpense)
		expenses.DELETE("/:id", mw.Auth(), h.DeleteExpense)
	}

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", mw.Auth(), h.CreateIncome)
		incomes.GET("", mw.Auth(), h.ListIncomes)
		incomes.GET("/total", mw.Auth(), h.TotalIncome)
		incomes.DELETE("/:id", mw.Auth(), h.DeleteIncome)
	}
}
