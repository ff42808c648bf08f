package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "capper-server/internal/domain/user"
	"capper-server/internal/infrastructure/database/entities"
	"capper-server/internal/utils/platformerrors"
)

// PostgresRepository persists users via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all users with their linked school preloaded.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.User, error) {
	var records []entities.User
	if err := r.db.WithContext(ctx).Preload("School").Order("id").Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list users",
			err,
		)
	}

	users := make([]domain.User, len(records))
	for i, record := range records {
		users[i] = *record.EtoD()
	}
	return users, nil
}

// FindByID fetches a user by its ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var record entities.User
	if err := r.db.WithContext(ctx).Preload("School").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("user not found: %d", id),
				nil,
			)
		}
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch user",
			err,
		)
	}
	return record.EtoD(), nil
}

// Ensure interface compliance.
var _ domain.Repository = (*PostgresRepository)(nil)
