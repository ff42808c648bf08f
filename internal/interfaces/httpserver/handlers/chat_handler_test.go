package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"capper-server/internal/domain/conversation"
	"capper-server/internal/interfaces/httpserver/handlers"
	"capper-server/internal/utils/platformerrors"
)

// MockConversationService is a mock implementation of conversation.Service.
type MockConversationService struct {
	ChatFunc    func(ctx context.Context, userID uint, conversationID, message string) (*conversation.TurnResult, error)
	HistoryFunc func(ctx context.Context, conversationID string) ([]conversation.Message, error)
}

func (m *MockConversationService) Chat(ctx context.Context, userID uint, conversationID, message string) (*conversation.TurnResult, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, userID, conversationID, message)
	}
	return nil, nil
}

func (m *MockConversationService) History(ctx context.Context, conversationID string) ([]conversation.Message, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, conversationID)
	}
	return nil, nil
}

func newChatRouter(service conversation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewChatHandler(service, zerolog.Nop())
	engine := gin.New()
	engine.POST("/v1/chat", handler.Chat)
	engine.GET("/v1/chat/:conversation_id/history", handler.History)
	return engine
}

func TestChatHandler_Chat(t *testing.T) {
	service := &MockConversationService{
		ChatFunc: func(_ context.Context, userID uint, conversationID, message string) (*conversation.TurnResult, error) {
			if userID != 7 || message != "hello" {
				t.Fatalf("unexpected args: user=%d message=%q", userID, message)
			}
			return &conversation.TurnResult{Reply: "Hi!", ConversationID: "conv-1"}, nil
		},
	}
	router := newChatRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"user_id":7,"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["response"] != "Hi!" || body["conversation_id"] != "conv-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatHandler_Chat_MissingFields(t *testing.T) {
	router := newChatRouter(&MockConversationService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"user_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
}

func TestChatHandler_Chat_UnknownUser(t *testing.T) {
	service := &MockConversationService{
		ChatFunc: func(context.Context, uint, string, string) (*conversation.TurnResult, error) {
			return nil, platformerrors.NewError(platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "user not found", nil)
		},
	}
	router := newChatRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"user_id":99,"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", recorder.Code)
	}
}

func TestChatHandler_History(t *testing.T) {
	service := &MockConversationService{
		HistoryFunc: func(_ context.Context, conversationID string) ([]conversation.Message, error) {
			if conversationID != "conv-9" {
				t.Fatalf("conversationID = %q", conversationID)
			}
			return []conversation.Message{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello"},
			}, nil
		},
	}
	router := newChatRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/conv-9/history", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var body struct {
		ConversationID string `json:"conversation_id"`
		Messages       []struct {
			Role    string `json:"role"`
			Content any    `json:"content"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ConversationID != "conv-9" || len(body.Messages) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestChatHandler_History_UnknownConversationIsEmptyList(t *testing.T) {
	service := &MockConversationService{
		HistoryFunc: func(context.Context, string) ([]conversation.Message, error) {
			return []conversation.Message{}, nil
		},
	}
	router := newChatRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/missing/history", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
}
