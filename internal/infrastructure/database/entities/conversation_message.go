package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"capper-server/internal/domain/conversation"
)

// ConversationMessage stores each message of a conversation. Content is
// JSON so structured payloads round-trip; plain text is stored as a JSON
// string.
type ConversationMessage struct {
	ID             uint           `gorm:"primaryKey"`
	ConversationID string         `gorm:"type:varchar(64);index;not null"`
	UserID         uint           `gorm:"index"`
	Role           string         `gorm:"size:32"`
	Content        datatypes.JSON `gorm:"type:jsonb"`
	Sequence       int            `gorm:"index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

// TableName specifies the table name for ConversationMessage.
func (ConversationMessage) TableName() string {
	return "conversation_messages"
}

// EtoD converts the database entity to the domain model. Content that does
// not decode as JSON is surfaced as the raw stored text; the chat core
// coerces whatever comes out.
func (m *ConversationMessage) EtoD() *conversation.Message {
	var content any
	if len(m.Content) > 0 {
		if err := json.Unmarshal(m.Content, &content); err != nil {
			content = string(m.Content)
		}
	}
	return &conversation.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		UserID:         m.UserID,
		Role:           m.Role,
		Content:        content,
		Sequence:       m.Sequence,
		CreatedAt:      m.CreatedAt,
	}
}

// NewSchemaConversationMessage creates a database entity from the domain
// model.
func NewSchemaConversationMessage(msg *conversation.Message) (*ConversationMessage, error) {
	content, err := json.Marshal(msg.Content)
	if err != nil {
		return nil, err
	}
	return &ConversationMessage{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		UserID:         msg.UserID,
		Role:           msg.Role,
		Content:        datatypes.JSON(content),
		Sequence:       msg.Sequence,
	}, nil
}
