// Package chat contains the context-window management core that sits
// between stored conversation history and the LLM call: token counting,
// budget-aware history truncation, transcript assembly, and response
// generation with fallback handling.
package chat

import (
	"encoding/json"
	"fmt"
)

// Internal message roles as stored in conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one stored conversation turn, oldest first within a
// conversation. Content is usually a string but older rows carry structured
// payloads, so it stays untyped until coerced.
type Message struct {
	Role    string
	Content any
}

// UserInfo identifies the user a turn is generated for.
type UserInfo struct {
	ID         uint
	Name       string
	SchoolName string
}

// Product is a catalog entry folded into the knowledge block.
type Product struct {
	Name        string
	Description string
	Price       float64
}

// FAQ is a question/answer pair from the referral knowledge base.
type FAQ struct {
	Question string
	Answer   string
}

// KnowledgeSnapshot is the per-turn bundle of grounding data. It is supplied
// fresh by the caller and never mutated here.
type KnowledgeSnapshot struct {
	Products []Product
	FAQs     []FAQ
	Rules    []string
}

// CoerceContent renders message content as text. Non-string content is
// JSON-encoded rather than dropped, so a malformed row still contributes a
// representation to counting and assembly.
func CoerceContent(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.RawMessage:
		return string(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
