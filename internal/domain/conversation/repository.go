package conversation

import "context"

// Repository persists conversation messages. Conversations themselves are
// implicit: a conversation exists once its first message is stored under a
// new public ID.
type Repository interface {
	Append(ctx context.Context, message *Message) error
	ListByConversationID(ctx context.Context, conversationID string) ([]Message, error)
}
