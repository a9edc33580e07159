package http

import (
	"github.com/gin-gonic/gin"

	"expense-tracker/internal/middleware"
	"expense-tracker/pkg/response"
)

// CreateIncome godoc
// @Summary     Record income
// @Description Records a new income entry for the authenticated user.
// @Tags        Incomes
// @Accept      json
// @Produce     json
// @Param       body body createIncomeReq true "Income data"
// @Success     201 {object} incomeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/incomes [POST]
func (h *handler) CreateIncome(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateIncomeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateIncome(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateIncome: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newIncomeResp(output.Income))
}

// ListIncomes godoc
// @Summary     List incomes
// @Description Returns a paginated list of the user's income entries.
// @Tags        Incomes
// @Accept      json
// @Produce     json
// @Param       source query string false "Filter by source"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listIncomesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/incomes [GET]
func (h *handler) ListIncomes(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListIncomesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListIncomes(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListIncomes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListIncomesResp(output))
}

// DeleteIncome godoc
// @Summary     Delete an income entry
// @Description Permanently removes an income entry by ID.
// @Tags        Incomes
// @Accept      json
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/incomes/{id} [DELETE]
func (h *handler) DeleteIncome(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteIncome(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteIncome: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// TotalIncome godoc
// @Summary     Total income
// @Description Sums all income amounts for the authenticated user.
// @Tags        Incomes
// @Accept      json
// @Produce     json
// @Success     200 {object} totalIncomeResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/incomes/total [GET]
func (h *handler) TotalIncome(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.TotalIncome(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TotalIncome: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, totalIncomeResp{Total: output.Total})
}
