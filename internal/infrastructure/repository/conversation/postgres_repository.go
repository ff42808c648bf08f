package conversation

import (
	"context"

	"gorm.io/gorm"

	domain "capper-server/internal/domain/conversation"
	"capper-server/internal/infrastructure/database/entities"
	"capper-server/internal/utils/platformerrors"
)

// PostgresRepository persists conversation messages via PostgreSQL using
// GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append stores a single message at the end of a conversation.
func (r *PostgresRepository) Append(ctx context.Context, message *domain.Message) error {
	entity, err := entities.NewSchemaConversationMessage(message)
	if err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeValidation,
			"failed to encode message content",
			err,
		)
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to append conversation message",
			err,
		)
	}
	message.ID = entity.ID
	message.CreatedAt = entity.CreatedAt
	return nil
}

// ListByConversationID returns the full history of a conversation in
// chronological order. An unknown conversation yields an empty history, not
// an error.
func (r *PostgresRepository) ListByConversationID(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var records []entities.ConversationMessage
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sequence, id").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch conversation history",
			err,
		)
	}

	messages := make([]domain.Message, len(records))
	for i, record := range records {
		messages[i] = *record.EtoD()
	}
	return messages, nil
}

// Ensure interface compliance.
var _ domain.Repository = (*PostgresRepository)(nil)
