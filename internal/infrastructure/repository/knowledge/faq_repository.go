package knowledge

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "capper-server/internal/domain/knowledge"
	"capper-server/internal/infrastructure/database/entities"
	"capper-server/internal/utils/platformerrors"
)

// FAQRepository persists referral FAQs via PostgreSQL using GORM.
type FAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates a repository backed by the provided DB.
func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// List returns all FAQs ordered by ID.
func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	var records []entities.FAQ
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list faqs",
			err,
		)
	}

	faqs := make([]domain.FAQ, len(records))
	for i, record := range records {
		faqs[i] = *record.EtoD()
	}
	return faqs, nil
}

// FindByID fetches a FAQ by its ID.
func (r *FAQRepository) FindByID(ctx context.Context, id uint) (*domain.FAQ, error) {
	var record entities.FAQ
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound(id)
		}
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch faq",
			err,
		)
	}
	return record.EtoD(), nil
}

// Create inserts the FAQ record.
func (r *FAQRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	entity := entities.NewSchemaFAQ(faq)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create faq",
			err,
		)
	}
	faq.ID = entity.ID
	return nil
}

// Update rewrites an existing FAQ record.
func (r *FAQRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	result := r.db.WithContext(ctx).Model(&entities.FAQ{}).Where("id = ?", faq.ID).
		Updates(map[string]any{
			"question": faq.Question,
			"answer":   faq.Answer,
		})
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update faq",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(faq.ID)
	}
	return nil
}

// Delete removes a FAQ record.
func (r *FAQRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.FAQ{}, id)
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete faq",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *FAQRepository) notFound(id uint) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("faq not found: %d", id),
		nil,
	)
}

// Ensure interface compliance.
var _ domain.FAQRepository = (*FAQRepository)(nil)
