package http

import (
	"github.com/gin-gonic/gin"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/middleware"
	"expense-tracker/pkg/response"
)

// ProcessMessage godoc
// @Summary     Send a chat message
// @Description Runs one message through the conversational pipeline and returns the bot's reply.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body processMessageReq true "Message"
// @Success     200 {object} envelopeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/message [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	expenses, incomes, err := h.snapshot(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "http.ProcessMessage snapshot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	env, err := h.uc.ProcessMessage(ctx, sc, chatbot.ProcessMessageInput{
		Message:  req.Message,
		Expenses: expenses,
		Incomes:  incomes,
		Currency: req.Currency.toModel(),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEnvelopeResp(env))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the user's most recent conversation turns, oldest first.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       limit query int false "Number of turns (default: 20, max: 50)"
// @Success     200 {object} historyResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.History(ctx, sc, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(out))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Removes every recorded conversation turn for the user.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.ClearHistory(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Capabilities godoc
// @Summary     Chatbot capabilities
// @Description Returns the supported intents, example utterances, and value taxonomies.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Success     200 {object} chatbot.Capabilities
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chatbot/capabilities [GET]
func (h *handler) Capabilities(c *gin.Context) {
	response.OK(c, h.uc.Capabilities())
}
