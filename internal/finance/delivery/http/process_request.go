package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processCreateExpenseReq binds and validates the create expense body.
func (h *handler) processCreateExpenseReq(c *gin.Context) (createExpenseReq, error) {
	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListExpensesReq binds the list expenses query parameters.
func (h *handler) processListExpensesReq(c *gin.Context) (listExpensesReq, error) {
	var req listExpensesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateExpenseReq binds the update expense body + URI param.
func (h *handler) processUpdateExpenseReq(c *gin.Context) (updateExpenseReq, error) {
	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processCreateIncomeReq binds and validates the create income body.
func (h *handler) processCreateIncomeReq(c *gin.Context) (createIncomeReq, error) {
	var req createIncomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListIncomesReq binds the list incomes query parameters.
func (h *handler) processListIncomesReq(c *gin.Context) (listIncomesReq, error) {
	var req listIncomesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
