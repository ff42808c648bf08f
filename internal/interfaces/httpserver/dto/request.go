package dto

// ChatRequest models POST /v1/chat input. ConversationID is empty for the
// first turn of a new conversation.
type ChatRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// ProductRequest models product create/update payloads.
type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// FAQRequest models FAQ create/update payloads.
type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// RuleRequest models referral-rule create/update payloads.
type RuleRequest struct {
	Rule string `json:"rule" binding:"required"`
}
