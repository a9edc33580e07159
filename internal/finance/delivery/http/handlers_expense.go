package http

import (
	"github.com/gin-gonic/gin"

	"expense-tracker/internal/middleware"
	"expense-tracker/pkg/response"
)

// CreateExpense godoc
// @Summary     Create a new expense
// @Description Records a new expense for the authenticated user.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       body body createExpenseReq true "Expense data"
// @Success     201 {object} expenseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses [POST]
func (h *handler) CreateExpense(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateExpenseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateExpense(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateExpense: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newExpenseResp(output.Expense))
}

// ListExpenses godoc
// @Summary     List expenses
// @Description Returns a paginated list of the user's expenses.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Param       from     query string false "Start date (YYYY-MM-DD)"
// @Param       to       query string false "End date (YYYY-MM-DD)"
// @Param       limit    query int    false "Page size (default: 20)"
// @Param       offset   query int    false "Page offset (default: 0)"
// @Success     200 {object} listExpensesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses [GET]
func (h *handler) ListExpenses(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListExpensesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListExpenses(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListExpenses: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListExpensesResp(output))
}

// DetailExpense godoc
// @Summary     Get expense detail
// @Description Returns a single expense by its ID.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} expenseResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses/{id} [GET]
func (h *handler) DetailExpense(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.DetailExpense(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailExpense: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newExpenseResp(output.Expense))
}

// UpdateExpense godoc
// @Summary     Update an expense
// @Description Updates an existing expense. All fields are optional (partial update).
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Expense ID"
// @Param       body body updateExpenseReq true "Fields to update"
// @Success     200 {object} expenseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses/{id} [PUT]
func (h *handler) UpdateExpense(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateExpenseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateExpense(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateExpense: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newExpenseResp(output.Expense))
}

// DeleteExpense godoc
// @Summary     Delete an expense
// @Description Permanently removes an expense by ID.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses/{id} [DELETE]
func (h *handler) DeleteExpense(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteExpense(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteExpense: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CategoryDistribution godoc
// @Summary     Expense distribution by category
// @Description Aggregates the user's total spend per category with percentages.
// @Tags        Expenses
// @Accept      json
// @Produce     json
// @Success     200 {object} distributionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/expenses/distribution [GET]
func (h *handler) CategoryDistribution(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.CategoryDistribution(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.CategoryDistribution: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDistributionResp(output))
}
