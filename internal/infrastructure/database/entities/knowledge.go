package entities

import (
	"time"

	"capper-server/internal/domain/knowledge"
)

// FAQ represents the database schema for referral FAQs.
type FAQ struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
}

// TableName specifies the table name for FAQ.
func (FAQ) TableName() string {
	return "faqs"
}

// EtoD converts the database entity to the domain model.
func (f *FAQ) EtoD() *knowledge.FAQ {
	return &knowledge.FAQ{ID: f.ID, Question: f.Question, Answer: f.Answer}
}

// NewSchemaFAQ creates a database entity from the domain model.
func NewSchemaFAQ(f *knowledge.FAQ) *FAQ {
	return &FAQ{ID: f.ID, Question: f.Question, Answer: f.Answer}
}

// ReferralRule represents the database schema for referral rules.
type ReferralRule struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Rule      string    `gorm:"type:text;not null"`
}

// TableName specifies the table name for ReferralRule.
func (ReferralRule) TableName() string {
	return "referral_rules"
}

// EtoD converts the database entity to the domain model.
func (r *ReferralRule) EtoD() *knowledge.ReferralRule {
	return &knowledge.ReferralRule{ID: r.ID, Rule: r.Rule}
}

// NewSchemaReferralRule creates a database entity from the domain model.
func NewSchemaReferralRule(r *knowledge.ReferralRule) *ReferralRule {
	return &ReferralRule{ID: r.ID, Rule: r.Rule}
}
