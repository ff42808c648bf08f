package knowledge

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "capper-server/internal/domain/knowledge"
	"capper-server/internal/infrastructure/database/entities"
	"capper-server/internal/utils/platformerrors"
)

// RuleRepository persists referral rules via PostgreSQL using GORM.
type RuleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a repository backed by the provided DB.
func NewRuleRepository(db *gorm.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// List returns all rules ordered by ID.
func (r *RuleRepository) List(ctx context.Context) ([]domain.ReferralRule, error) {
	var records []entities.ReferralRule
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list referral rules",
			err,
		)
	}

	rules := make([]domain.ReferralRule, len(records))
	for i, record := range records {
		rules[i] = *record.EtoD()
	}
	return rules, nil
}

// Create inserts the rule record.
func (r *RuleRepository) Create(ctx context.Context, rule *domain.ReferralRule) error {
	entity := entities.NewSchemaReferralRule(rule)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create referral rule",
			err,
		)
	}
	rule.ID = entity.ID
	return nil
}

// Update rewrites an existing rule record.
func (r *RuleRepository) Update(ctx context.Context, rule *domain.ReferralRule) error {
	result := r.db.WithContext(ctx).Model(&entities.ReferralRule{}).Where("id = ?", rule.ID).
		Update("rule", rule.Rule)
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update referral rule",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(rule.ID)
	}
	return nil
}

// Delete removes a rule record.
func (r *RuleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.ReferralRule{}, id)
	if result.Error != nil {
		return platformerrors.NewError(
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete referral rule",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return r.notFound(id)
	}
	return nil
}

func (r *RuleRepository) notFound(id uint) *platformerrors.PlatformError {
	return platformerrors.NewError(
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		fmt.Sprintf("referral rule not found: %d", id),
		nil,
	)
}

// Ensure interface compliance.
var _ domain.RuleRepository = (*RuleRepository)(nil)
