package knowledge

import "context"

// FAQRepository exposes CRUD operations for referral FAQs.
type FAQRepository interface {
	List(ctx context.Context) ([]FAQ, error)
	FindByID(ctx context.Context, id uint) (*FAQ, error)
	Create(ctx context.Context, faq *FAQ) error
	Update(ctx context.Context, faq *FAQ) error
	Delete(ctx context.Context, id uint) error
}

// RuleRepository exposes CRUD operations for referral rules.
type RuleRepository interface {
	List(ctx context.Context) ([]ReferralRule, error)
	Create(ctx context.Context, rule *ReferralRule) error
	Update(ctx context.Context, rule *ReferralRule) error
	Delete(ctx context.Context, id uint) error
}
