package conversation_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"capper-server/internal/domain/catalog"
	"capper-server/internal/domain/chat"
	"capper-server/internal/domain/conversation"
	"capper-server/internal/domain/knowledge"
	"capper-server/internal/domain/user"
	"capper-server/internal/utils/platformerrors"
)

type stubMessageRepo struct {
	byConversation map[string][]conversation.Message
	appended       []conversation.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byConversation: map[string][]conversation.Message{}}
}

func (r *stubMessageRepo) Append(_ context.Context, message *conversation.Message) error {
	r.appended = append(r.appended, *message)
	r.byConversation[message.ConversationID] = append(r.byConversation[message.ConversationID], *message)
	return nil
}

func (r *stubMessageRepo) ListByConversationID(_ context.Context, conversationID string) ([]conversation.Message, error) {
	return r.byConversation[conversationID], nil
}

type stubUserRepo struct {
	users map[uint]*user.User
}

func (r *stubUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	if usr, ok := r.users[id]; ok {
		return usr, nil
	}
	return nil, platformerrors.NewError(platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "user not found", nil)
}

type stubProductRepo struct{ products []catalog.Product }

func (r *stubProductRepo) List(_ context.Context, _ int) ([]catalog.Product, error) {
	return r.products, nil
}
func (r *stubProductRepo) FindByID(_ context.Context, _ uint) (*catalog.Product, error) {
	return nil, nil
}
func (r *stubProductRepo) Create(_ context.Context, _ *catalog.Product) error { return nil }
func (r *stubProductRepo) Update(_ context.Context, _ *catalog.Product) error { return nil }
func (r *stubProductRepo) Delete(_ context.Context, _ uint) error             { return nil }

type stubFAQRepo struct{ faqs []knowledge.FAQ }

func (r *stubFAQRepo) List(_ context.Context) ([]knowledge.FAQ, error)            { return r.faqs, nil }
func (r *stubFAQRepo) FindByID(_ context.Context, _ uint) (*knowledge.FAQ, error) { return nil, nil }
func (r *stubFAQRepo) Create(_ context.Context, _ *knowledge.FAQ) error           { return nil }
func (r *stubFAQRepo) Update(_ context.Context, _ *knowledge.FAQ) error           { return nil }
func (r *stubFAQRepo) Delete(_ context.Context, _ uint) error                     { return nil }

type stubRuleRepo struct{ rules []knowledge.ReferralRule }

func (r *stubRuleRepo) List(_ context.Context) ([]knowledge.ReferralRule, error) {
	return r.rules, nil
}
func (r *stubRuleRepo) Create(_ context.Context, _ *knowledge.ReferralRule) error { return nil }
func (r *stubRuleRepo) Update(_ context.Context, _ *knowledge.ReferralRule) error { return nil }
func (r *stubRuleRepo) Delete(_ context.Context, _ uint) error                    { return nil }

type stubResponder struct {
	reply       string
	gotUser     chat.UserInfo
	gotHistory  []chat.Message
	gotMessage  string
	gotSnapshot chat.KnowledgeSnapshot
}

func (r *stubResponder) Generate(_ context.Context, userInfo chat.UserInfo, history []chat.Message, userMessage string, snapshot chat.KnowledgeSnapshot) string {
	r.gotUser = userInfo
	r.gotHistory = history
	r.gotMessage = userMessage
	r.gotSnapshot = snapshot
	return r.reply
}

func newTestService(messages *stubMessageRepo, responder *stubResponder) conversation.Service {
	school := "Maple Elementary"
	return conversation.NewService(
		messages,
		&stubUserRepo{users: map[uint]*user.User{7: {ID: 7, Name: "Jamie", SchoolName: &school}}},
		&stubProductRepo{products: []catalog.Product{{Name: "Galaxy Cap", Description: "Glows", Price: 4.5}}},
		&stubFAQRepo{faqs: []knowledge.FAQ{{Question: "Q", Answer: "A"}}},
		&stubRuleRepo{rules: []knowledge.ReferralRule{{Rule: "One reward per friend."}}},
		responder,
		zerolog.Nop(),
	)
}

func TestChat_NewConversation(t *testing.T) {
	messages := newStubMessageRepo()
	responder := &stubResponder{reply: "Hi Jamie!"}
	svc := newTestService(messages, responder)

	result, err := svc.Chat(context.Background(), 7, "", "hello")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if result.Reply != "Hi Jamie!" {
		t.Fatalf("reply = %q", result.Reply)
	}
	if result.ConversationID == "" {
		t.Fatal("expected a generated conversation id")
	}

	if len(messages.appended) != 2 {
		t.Fatalf("expected user and assistant messages persisted, got %d", len(messages.appended))
	}
	if messages.appended[0].Role != chat.RoleUser || messages.appended[0].Content != "hello" {
		t.Fatalf("first persisted message wrong: %+v", messages.appended[0])
	}
	if messages.appended[1].Role != chat.RoleAssistant || messages.appended[1].Content != "Hi Jamie!" {
		t.Fatalf("second persisted message wrong: %+v", messages.appended[1])
	}
	if messages.appended[0].Sequence != 1 || messages.appended[1].Sequence != 2 {
		t.Fatalf("sequences = %d, %d", messages.appended[0].Sequence, messages.appended[1].Sequence)
	}

	if responder.gotUser.Name != "Jamie" || responder.gotUser.SchoolName != "Maple Elementary" {
		t.Fatalf("responder user info wrong: %+v", responder.gotUser)
	}
	if len(responder.gotHistory) != 0 {
		t.Fatalf("new conversation should start with empty history, got %d", len(responder.gotHistory))
	}
	if len(responder.gotSnapshot.Products) != 1 || len(responder.gotSnapshot.FAQs) != 1 || len(responder.gotSnapshot.Rules) != 1 {
		t.Fatalf("knowledge snapshot incomplete: %+v", responder.gotSnapshot)
	}
}

func TestChat_ExistingConversationCarriesHistory(t *testing.T) {
	messages := newStubMessageRepo()
	messages.byConversation["conv-1"] = []conversation.Message{
		{ConversationID: "conv-1", Role: chat.RoleUser, Content: "earlier", Sequence: 1},
		{ConversationID: "conv-1", Role: chat.RoleAssistant, Content: "reply", Sequence: 2},
	}
	responder := &stubResponder{reply: "continuing"}
	svc := newTestService(messages, responder)

	result, err := svc.Chat(context.Background(), 7, "conv-1", "next")
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if result.ConversationID != "conv-1" {
		t.Fatalf("conversation id changed to %q", result.ConversationID)
	}
	if len(responder.gotHistory) != 2 {
		t.Fatalf("responder saw %d history messages, want 2", len(responder.gotHistory))
	}
	if messages.appended[0].Sequence != 3 || messages.appended[1].Sequence != 4 {
		t.Fatalf("sequences = %d, %d, want 3 and 4", messages.appended[0].Sequence, messages.appended[1].Sequence)
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	svc := newTestService(newStubMessageRepo(), &stubResponder{})

	_, err := svc.Chat(context.Background(), 7, "", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChat_UnknownUser(t *testing.T) {
	messages := newStubMessageRepo()
	svc := newTestService(messages, &stubResponder{})

	_, err := svc.Chat(context.Background(), 99, "", "hello")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(messages.appended) != 0 {
		t.Fatalf("nothing should be persisted for an unknown user, got %d", len(messages.appended))
	}
}

func TestHistory_UnknownConversationIsEmpty(t *testing.T) {
	svc := newTestService(newStubMessageRepo(), &stubResponder{})

	history, err := svc.History(context.Background(), "missing")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d", len(history))
	}
}
