package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"expense-tracker/internal/model"
	"expense-tracker/pkg/deepgram"
)

type currencyReq struct {
	Symbol   string `json:"symbol"   binding:"omitempty,max=5"`
	Position string `json:"position" binding:"omitempty,oneof=before after"`
}

func (r *currencyReq) toModel() *model.Currency {
	if r == nil {
		return nil
	}
	return &model.Currency{Symbol: r.Symbol, Position: r.Position}
}

type processMessageReq struct {
	Message  string       `json:"message" binding:"required,max=2000"`
	Currency *currencyReq `json:"currency"`
}

// processMessageReq binds and validates the chat message body.
func (h *handler) processMessageReq(c *gin.Context) (processMessageReq, error) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

type historyReq struct {
	Limit int `form:"limit"`
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Limit < 0 {
		req.Limit = 0
	}
	return req, nil
}

type audioReq struct {
	Audio    []byte
	MimeType string
	Language string
}

// processAudioReq extracts and validates the multipart audio attachment.
func (h *handler) processAudioReq(c *gin.Context) (audioReq, error) {
	var req audioReq

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return req, deepgram.ValidateAudio("", "", 0)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if err := deepgram.ValidateAudio(fileHeader.Filename, mimeType, fileHeader.Size); err != nil {
		return req, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return req, err
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return req, err
	}

	req.Audio = audio
	req.MimeType = mimeType
	req.Language = c.PostForm("language")
	return req, nil
}
