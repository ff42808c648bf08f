package conversation

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/chat"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/user"
	"capper-server/internal/utils/platformerrors"
)

// Responder generates the assistant reply for one turn. Satisfied by
// *chat.Generator; narrowed to an interface so turn orchestration can be
// tested with a stub.
type Responder interface {
	Generate(ctx context.Context, userInfo chat.UserInfo, history []chat.Message, userMessage string, knowledge chat.KnowledgeSnapshot) string
}

// Service runs complete chat turns and serves history reads.
type Service interface {
	// Chat processes one turn to completion: validate the user, load or
	// start the conversation, persist the user message, generate the
	// reply, persist it, and return both reply and conversation id. Turns
	// within one conversation must not be issued concurrently by callers;
	// the service takes no cross-turn lock.
	Chat(ctx context.Context, userID uint, conversationID, message string) (*TurnResult, error)
	History(ctx context.Context, conversationID string) ([]Message, error)
}

type service struct {
	messages  Repository
	users     user.Repository
	products  catalog.Repository
	faqs      knowledge.FAQRepository
	rules     knowledge.RuleRepository
	responder Responder
	log       zerolog.Logger
}

// NewService wires the conversation service.
func NewService(
	messages Repository,
	users user.Repository,
	products catalog.Repository,
	faqs knowledge.FAQRepository,
	rules knowledge.RuleRepository,
	responder Responder,
	log zerolog.Logger,
) Service {
	return &service{
		messages:  messages,
		users:     users,
		products:  products,
		faqs:      faqs,
		rules:     rules,
		responder: responder,
		log:       log.With().Str("component", "conversation-service").Logger(),
	}
}

func (s *service) Chat(ctx context.Context, userID uint, conversationID, message string) (*TurnResult, error) {
	if message == "" {
		return nil, platformerrors.NewError(platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "message is required", nil)
	}

	usr, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var history []Message
	if conversationID == "" {
		conversationID = uuid.NewString()
		s.log.Info().Str("conversation_id", conversationID).Uint("user_id", userID).Msg("starting new conversation")
	} else {
		history, err = s.messages.ListByConversationID(ctx, conversationID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.messages.Append(ctx, &Message{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           chat.RoleUser,
		Content:        message,
		Sequence:       len(history) + 1,
	}); err != nil {
		return nil, err
	}

	snapshot, err := s.loadKnowledge(ctx)
	if err != nil {
		return nil, err
	}

	userInfo := chat.UserInfo{ID: usr.ID, Name: usr.Name}
	if usr.SchoolName != nil {
		userInfo.SchoolName = *usr.SchoolName
	}

	reply := s.responder.Generate(ctx, userInfo, toChatHistory(history), message, snapshot)

	if err := s.messages.Append(ctx, &Message{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           chat.RoleAssistant,
		Content:        reply,
		Sequence:       len(history) + 2,
	}); err != nil {
		return nil, err
	}

	return &TurnResult{Reply: reply, ConversationID: conversationID}, nil
}

func (s *service) History(ctx context.Context, conversationID string) ([]Message, error) {
	return s.messages.ListByConversationID(ctx, conversationID)
}

// loadKnowledge fetches the per-turn grounding data. The three reads are
// independent, so they run concurrently.
func (s *service) loadKnowledge(ctx context.Context) (chat.KnowledgeSnapshot, error) {
	var (
		products []catalog.Product
		faqs     []knowledge.FAQ
		rules    []knowledge.ReferralRule
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		products, err = s.products.List(groupCtx, catalog.DefaultListLimit)
		return err
	})
	group.Go(func() error {
		var err error
		faqs, err = s.faqs.List(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		rules, err = s.rules.List(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return chat.KnowledgeSnapshot{}, err
	}

	snapshot := chat.KnowledgeSnapshot{
		Products: make([]chat.Product, len(products)),
		FAQs:     make([]chat.FAQ, len(faqs)),
		Rules:    make([]string, len(rules)),
	}
	for i, p := range products {
		snapshot.Products[i] = chat.Product{Name: p.Name, Description: p.Description, Price: p.Price}
	}
	for i, f := range faqs {
		snapshot.FAQs[i] = chat.FAQ{Question: f.Question, Answer: f.Answer}
	}
	for i, r := range rules {
		snapshot.Rules[i] = r.Rule
	}
	return snapshot, nil
}

func toChatHistory(history []Message) []chat.Message {
	out := make([]chat.Message, len(history))
	for i, msg := range history {
		out[i] = chat.Message{Role: msg.Role, Content: msg.Content}
	}
	return out
}
