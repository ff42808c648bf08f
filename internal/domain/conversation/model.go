package conversation

import "time"

// Message is one persisted turn of a conversation. Content is stored as
// JSON, so reads may surface non-string payloads; the chat core coerces
// them before counting or assembly.
type Message struct {
	ID             uint      `json:"-"`
	ConversationID string    `json:"-"`
	UserID         uint      `json:"-"`
	Role           string    `json:"role"`
	Content        any       `json:"content"`
	Sequence       int       `json:"-"`
	CreatedAt      time.Time `json:"-"`
}

// TurnResult is the outcome of one completed chat turn.
type TurnResult struct {
	Reply          string
	ConversationID string
}
