package llmprovider

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"capper-server/internal/domain/llm"
)

// Client adapts an OpenAI-compatible chat completion API to the llm
// capability shape the chat core depends on.
type Client struct {
	api   *openai.Client
	model string
}

// Config controls the provider connection.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewClient creates the provider adapter. The caller is expected to check
// the API key beforehand; an unconfigured service passes a nil capability
// to the generator instead of constructing a client.
func NewClient(cfg Config) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// StartChat seeds a session with the transcript. The provider-facing
// "model" role maps to the API's assistant role.
func (c *Client) StartChat(transcript []llm.Turn) llm.Session {
	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	for _, turn := range transcript {
		role := openai.ChatMessageRoleUser
		if turn.Role == llm.RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Text,
		})
	}
	return &chatSession{client: c, messages: messages}
}

type chatSession struct {
	client   *Client
	messages []openai.ChatCompletionMessage
}

// Send submits the message to answer and returns the generated text.
// Failures come back tagged so the core can branch on the kind.
func (s *chatSession) Send(ctx context.Context, message string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: s.client.model,
		Messages: append(s.messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: message,
		}),
	}

	response, err := s.client.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", classify(err)
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}

// classify tags provider failures. Error-text inspection is confined to
// this adapter; the core only ever sees the kind.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if code, ok := apiErr.Code.(string); ok && code == "context_length_exceeded" {
			return llm.NewCallError(llm.KindOverflow, err)
		}
	}
	if isOverflowMessage(err.Error()) {
		return llm.NewCallError(llm.KindOverflow, err)
	}
	return llm.NewCallError(llm.KindGeneric, err)
}

func isOverflowMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range []string{"context length", "context_length", "maximum context", "too many tokens"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Ensure interface compliance.
var _ llm.Capability = (*Client)(nil)
