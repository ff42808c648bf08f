package chat_test

import (
	"testing"

	"capper-server/internal/domain/chat"
	"capper-server/internal/domain/llm"
)

func TestAssemble_ContextAndAcknowledgmentLeadTheTranscript(t *testing.T) {
	transcript := chat.Assemble("context text", nil)

	if len(transcript) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(transcript))
	}
	if transcript[0].Role != llm.RoleUser || transcript[0].Text != "context text" {
		t.Fatalf("unexpected opening turn: %+v", transcript[0])
	}
	if transcript[1].Role != llm.RoleModel || transcript[1].Text != chat.Acknowledgment {
		t.Fatalf("unexpected acknowledgment turn: %+v", transcript[1])
	}
}

func TestAssemble_RoleMapping(t *testing.T) {
	kept := []chat.Message{
		{Role: chat.RoleUser, Content: "hi"},
		{Role: chat.RoleAssistant, Content: "hello"},
		{Role: "model", Content: "still model"},
		{Role: "", Content: "missing role"},
		{Role: "system", Content: "unknown role"},
	}

	transcript := chat.Assemble("ctx", kept)
	wantRoles := []string{llm.RoleUser, llm.RoleModel, llm.RoleUser, llm.RoleModel, llm.RoleModel, llm.RoleUser, llm.RoleUser}
	if len(transcript) != len(wantRoles) {
		t.Fatalf("expected %d turns, got %d", len(wantRoles), len(transcript))
	}
	for i, want := range wantRoles {
		if transcript[i].Role != want {
			t.Fatalf("turn %d role = %q, want %q", i, transcript[i].Role, want)
		}
	}
}

func TestAssemble_CoercesNonStringContent(t *testing.T) {
	kept := []chat.Message{
		{Role: chat.RoleUser, Content: nil},
		{Role: chat.RoleUser, Content: 42},
		{Role: chat.RoleAssistant, Content: map[string]string{"note": "structured"}},
	}

	transcript := chat.Assemble("ctx", kept)
	if len(transcript) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(transcript))
	}
	if transcript[2].Text != "" {
		t.Fatalf("nil content = %q, want empty string", transcript[2].Text)
	}
	if transcript[3].Text != "42" {
		t.Fatalf("numeric content = %q, want \"42\"", transcript[3].Text)
	}
	if transcript[4].Text != `{"note":"structured"}` {
		t.Fatalf("map content = %q", transcript[4].Text)
	}
}
