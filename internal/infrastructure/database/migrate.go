package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"capper-server/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the capper domain.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.School{},
		&entities.User{},
		&entities.Product{},
		&entities.FAQ{},
		&entities.ReferralRule{},
		&entities.ConversationMessage{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
