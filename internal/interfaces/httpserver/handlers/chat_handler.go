package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/conversation"
	"capper-server/internal/infrastructure/logger"
	"capper-server/internal/infrastructure/metrics"
	"capper-server/internal/interfaces/httpserver/dto"
)

// ChatHandler exposes HTTP entrypoints for chat turns and history reads.
type ChatHandler struct {
	service conversation.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service conversation.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Chat handles POST /v1/chat. A missing conversation_id starts a new
// conversation; the generated id comes back in the response so the client
// can continue the thread.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.Chat(c.Request.Context(), req.UserID, req.ConversationID, req.Message)
	if err != nil {
		metrics.ChatTurnsTotal.WithLabelValues("error").Inc()
		h.log.Warn().Err(err).
			Uint("user_id", req.UserID).
			Str("message", logger.SanitizeText(req.Message)).
			Msg("chat turn failed")
		respondError(c, err)
		return
	}

	metrics.ChatTurnsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, dto.ChatResponse{
		Response:       result.Reply,
		ConversationID: result.ConversationID,
	})
}

// History handles GET /v1/chat/:conversation_id/history. Unknown
// conversations return an empty message list rather than 404.
func (h *ChatHandler) History(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	messages, err := h.service.History(c.Request.Context(), conversationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		ConversationID: conversationID,
		Messages:       messages,
	})
}
