package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ModelInfo contains model metadata reported by the provider gateway.
// Context length is optional; vanilla OpenAI model objects omit it.
type ModelInfo struct {
	ID            string `json:"id"`
	ContextLength *int   `json:"context_length,omitempty"`
	MaxTokens     *int   `json:"max_tokens,omitempty"`
}

// InfoClient fetches model metadata over the provider's REST surface. It is
// separate from the completion client because the metadata endpoint is not
// part of the SDK's typed API.
type InfoClient struct {
	httpClient *resty.Client
}

// NewInfoClient creates a Resty-backed metadata client.
func NewInfoClient(baseURL, apiKey string) *InfoClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &InfoClient{httpClient: client}
}

// GetModelInfo fetches metadata for the model. A 404 yields nil info, not
// an error; callers fall back to configured defaults.
func (c *InfoClient) GetModelInfo(ctx context.Context, modelID string) (*ModelInfo, error) {
	var info ModelInfo

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&info).
		Get(fmt.Sprintf("/models/%s", modelID))
	if err != nil {
		return nil, fmt.Errorf("fetch model info: %w", err)
	}

	if resp.IsError() {
		if resp.StatusCode() == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("provider error: %s", resp.String())
	}

	return &info, nil
}
