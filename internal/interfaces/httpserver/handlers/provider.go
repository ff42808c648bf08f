package handlers

import (
	"github.com/rs/zerolog"

	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/conversation"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/user"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat    *ChatHandler
	User    *UserHandler
	Product *ProductHandler
	FAQ     *FAQHandler
	Rule    *RuleHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	conversationService conversation.Service,
	userService user.Service,
	catalogService catalog.Service,
	knowledgeService knowledge.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:    NewChatHandler(conversationService, log),
		User:    NewUserHandler(userService, log),
		Product: NewProductHandler(catalogService, log),
		FAQ:     NewFAQHandler(knowledgeService, log),
		Rule:    NewRuleHandler(knowledgeService, log),
	}
}
