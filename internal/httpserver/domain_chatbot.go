package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsUC "expense-tracker/internal/analytics/usecase"
	chatbotHTTP "expense-tracker/internal/chatbot/delivery/http"
	chatbotUC "expense-tracker/internal/chatbot/usecase"
	"expense-tracker/internal/finance"
	"expense-tracker/internal/middleware"
)

// setupChatbotDomain initializes the analytics and chatbot domains and
// registers the conversational routes.
func (srv HTTPServer) setupChatbotDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, financeUseCase finance.UseCase) error {
	// 1. Analytics UseCase (LLM-backed with deterministic fallbacks)
	analytics := analyticsUC.New(srv.llm, srv.l)

	// 2. Chatbot UseCase
	uc := chatbotUC.New(srv.l, srv.llm, srv.speech, financeUseCase, analytics, srv.sessions)

	// 3. HTTP Handler
	h := chatbotHTTP.New(srv.l, uc, financeUseCase)

	// 4. Routes: /api/v1/chatbot, /api/v1/speech
	chatbotHTTP.RegisterRoutes(api, h, mw)

	if srv.llm == nil {
		srv.l.Warnf(ctx, "Gemini not configured, chatbot will reply with the service-unavailable apology")
	}
	if srv.speech == nil {
		srv.l.Warnf(ctx, "Deepgram not configured, speech endpoints will return 503")
	}
	srv.l.Infof(ctx, "Chatbot domain registered")
	return nil
}
