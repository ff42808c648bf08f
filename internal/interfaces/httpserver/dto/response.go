package dto

import "capper-server/internal/domain/conversation"

// ChatResponse models POST /v1/chat output.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// HistoryResponse models GET /v1/chat/:conversation_id/history output.
type HistoryResponse struct {
	ConversationID string                 `json:"conversation_id"`
	Messages       []conversation.Message `json:"messages"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
