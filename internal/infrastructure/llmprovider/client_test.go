package llmprovider

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"capper-server/internal/domain/llm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want llm.ErrorKind
	}{
		{
			name: "api error with overflow code",
			err:  &openai.APIError{Code: "context_length_exceeded", Message: "too long"},
			want: llm.KindOverflow,
		},
		{
			name: "api error with overflow message only",
			err:  &openai.APIError{Code: "invalid_request_error", Message: "This model's maximum context length is 128000 tokens"},
			want: llm.KindOverflow,
		},
		{
			name: "plain overflow message",
			err:  errors.New("request rejected: too many tokens"),
			want: llm.KindOverflow,
		},
		{
			name: "network failure",
			err:  errors.New("dial tcp: connection refused"),
			want: llm.KindGeneric,
		},
		{
			name: "api error with unrelated code",
			err:  &openai.APIError{Code: "rate_limit_exceeded", Message: "slow down"},
			want: llm.KindGeneric,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagged := classify(tt.err)
			if got := llm.KindOf(tagged); got != tt.want {
				t.Fatalf("classify kind = %q, want %q", got, tt.want)
			}
			if !errors.Is(tagged, tt.err) {
				t.Fatal("classified error must wrap the original")
			}
		})
	}
}

func TestIsOverflowMessage(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"This model's maximum context length is 8192 tokens", true},
		{"CONTEXT LENGTH exceeded", true},
		{"error code context_length_exceeded", true},
		{"you sent too many tokens", true},
		{"invalid api key", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isOverflowMessage(tt.message); got != tt.want {
			t.Fatalf("isOverflowMessage(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}

func TestStartChat_MapsModelRoleToAssistant(t *testing.T) {
	client := NewClient(Config{APIKey: "test", Model: "gpt-4o-mini"})

	session := client.StartChat([]llm.Turn{
		{Role: llm.RoleUser, Text: "context"},
		{Role: llm.RoleModel, Text: "ack"},
	})

	chat, ok := session.(*chatSession)
	if !ok {
		t.Fatalf("unexpected session type %T", session)
	}
	if len(chat.messages) != 2 {
		t.Fatalf("expected 2 seeded messages, got %d", len(chat.messages))
	}
	if chat.messages[0].Role != openai.ChatMessageRoleUser {
		t.Fatalf("first role = %q, want user", chat.messages[0].Role)
	}
	if chat.messages[1].Role != openai.ChatMessageRoleAssistant {
		t.Fatalf("second role = %q, want assistant", chat.messages[1].Role)
	}
}
