package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/middleware"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/response"
)

// SpeechToText godoc
// @Summary     Transcribe audio
// @Description Converts an uploaded audio file to text without running the chat pipeline.
// @Tags        Speech
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio    formData file   true  "Audio file (max 25MB)"
// @Param       language formData string false "Language code, e.g. en-US"
// @Success     200 {object} transcriptionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Router      /api/v1/speech/speech-to-text [POST]
func (h *handler) SpeechToText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Transcribe(ctx, chatbot.TranscribeInput{
		Audio:    req.Audio,
		MimeType: req.MimeType,
		Language: req.Language,
	})
	if err != nil {
		if errors.Is(err, chatbot.ErrSpeechUnavailable) {
			response.ServiceUnavailable(c, "speech service is not available")
			return
		}
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTranscriptionResp(out))
}

// VoiceMessage godoc
// @Summary     Send a voice message
// @Description Transcribes the audio and runs the transcript through the chat pipeline.
// @Tags        Speech
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio    formData file   true  "Audio file (max 25MB)"
// @Param       language formData string false "Language code, e.g. en-US"
// @Success     200 {object} envelopeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Service Unavailable"
// @Router      /api/v1/speech/voice-message [POST]
func (h *handler) VoiceMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processAudioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	expenses, incomes, err := h.snapshot(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "http.VoiceMessage snapshot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	env, err := h.uc.ProcessVoice(ctx, sc, chatbot.ProcessVoiceInput{
		Audio:    req.Audio,
		MimeType: req.MimeType,
		Language: req.Language,
		Expenses: expenses,
		Incomes:  incomes,
	})
	if err != nil {
		if errors.Is(err, chatbot.ErrSpeechUnavailable) {
			response.ServiceUnavailable(c, "speech service is not available")
			return
		}
		h.l.Errorf(ctx, "uc.ProcessVoice: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEnvelopeResp(env))
}

// Languages godoc
// @Summary     Supported transcription languages
// @Description Lists the language codes accepted by the transcription endpoints.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Success     200 {object} languagesResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/speech/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, languagesResp{Languages: deepgram.SupportedLanguages()})
}

// VoiceStatus godoc
// @Summary     Speech service status
// @Description Reports whether voice transcription is configured and which model serves it.
// @Tags        Speech
// @Accept      json
// @Produce     json
// @Success     200 {object} chatbot.VoiceStatus
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/speech/status [GET]
func (h *handler) VoiceStatus(c *gin.Context) {
	response.OK(c, h.uc.VoiceStatus())
}
