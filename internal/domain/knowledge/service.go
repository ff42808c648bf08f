package knowledge

import (
	"context"

	"github.com/rs/zerolog"

	"capper-server/internal/utils/platformerrors"
)

// Service describes the business logic surface for the referral knowledge
// base (FAQs and rules).
type Service interface {
	ListFAQs(ctx context.Context) ([]FAQ, error)
	GetFAQ(ctx context.Context, id uint) (*FAQ, error)
	CreateFAQ(ctx context.Context, faq *FAQ) error
	UpdateFAQ(ctx context.Context, faq *FAQ) error
	DeleteFAQ(ctx context.Context, id uint) error

	ListRules(ctx context.Context) ([]ReferralRule, error)
	CreateRule(ctx context.Context, rule *ReferralRule) error
	UpdateRule(ctx context.Context, rule *ReferralRule) error
	DeleteRule(ctx context.Context, id uint) error
}

type service struct {
	faqs  FAQRepository
	rules RuleRepository
	log   zerolog.Logger
}

// NewService wires the knowledge service with its repositories.
func NewService(faqs FAQRepository, rules RuleRepository, log zerolog.Logger) Service {
	return &service{
		faqs:  faqs,
		rules: rules,
		log:   log.With().Str("component", "knowledge-service").Logger(),
	}
}

func (s *service) ListFAQs(ctx context.Context) ([]FAQ, error) {
	return s.faqs.List(ctx)
}

func (s *service) GetFAQ(ctx context.Context, id uint) (*FAQ, error) {
	return s.faqs.FindByID(ctx, id)
}

func (s *service) CreateFAQ(ctx context.Context, faq *FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "faq question and answer are required", nil)
	}
	return s.faqs.Create(ctx, faq)
}

func (s *service) UpdateFAQ(ctx context.Context, faq *FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "faq question and answer are required", nil)
	}
	return s.faqs.Update(ctx, faq)
}

func (s *service) DeleteFAQ(ctx context.Context, id uint) error {
	return s.faqs.Delete(ctx, id)
}

func (s *service) ListRules(ctx context.Context) ([]ReferralRule, error) {
	return s.rules.List(ctx)
}

func (s *service) CreateRule(ctx context.Context, rule *ReferralRule) error {
	if rule.Rule == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "rule text is required", nil)
	}
	return s.rules.Create(ctx, rule)
}

func (s *service) UpdateRule(ctx context.Context, rule *ReferralRule) error {
	if rule.Rule == "" {
		return platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "rule text is required", nil)
	}
	return s.rules.Update(ctx, rule)
}

func (s *service) DeleteRule(ctx context.Context, id uint) error {
	return s.rules.Delete(ctx, id)
}
