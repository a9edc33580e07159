package http

import (
	"expense-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated scope; message endpoints are also
// rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chatbot := rg.Group("/chatbot")
	{
		chatbot.POST("/message", mw.Auth(), mw.RateLimit(), h.ProcessMessage)
		chatbot.GET("/history", mw.Auth(), h.History)
		chatbot.DELETE("/history", mw.Auth(), h.ClearHistory)
		chatbot.GET("/capabilities", mw.Auth(), h.Capabilities)
	}

	speech := rg.Group("/speech")
	{
		speech.POST("/speech-to-text", mw.Auth(), mw.RateLimit(), h.SpeechToText)
		speech.POST("/voice-message", mw.Auth(), mw.RateLimit(), h.VoiceMessage)
		speech.GET("/languages", mw.Auth(), h.Languages)
		speech.GET("/status", mw.Auth(), h.VoiceStatus)
	}
}
