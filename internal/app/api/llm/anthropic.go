package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

const (
	// AnthropicBaseURL is the hosted Anthropic API
	AnthropicBaseURL = "https://api.anthropic.com"

	anthropicVersion = "2023-06-01"
)

// AnthropicService calls the Anthropic Messages API
type AnthropicService struct {
	id        provider.ID
	pinned    string
	model     string
	apiKey    string
	baseURL   string
	maxTokens int
	client    *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is a non-2xx answer from a vendor API
type APIError struct {
	Provider   provider.ID
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Type, e.StatusCode, e.Message)
}

// NewAnthropicService creates an Anthropic client against baseURL
func NewAnthropicService(params provider.Params, baseURL string) (*AnthropicService, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return &AnthropicService{
		id:        params.ID,
		pinned:    params.PinnedModel,
		model:     params.Model(),
		apiKey:    params.Secret,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxTokens: config.DefaultMaxTokens,
		client:    &http.Client{Timeout: params.Timeout},
	}, nil
}

// ID implements provider.Service
func (a *AnthropicService) ID() provider.ID { return a.id }

// ModelName implements provider.Service
func (a *AnthropicService) ModelName() string { return a.pinned }

// Complete implements provider.LLMService
func (a *AnthropicService) Complete(ctx context.Context, system, user string) (string, error) {
	payload, err := json.Marshal(anthropicRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    system,
		Messages:  []anthropicMessage{{Role: "user", Content: user}},
	})
	if err != nil {
		return "", fmt.Errorf("%s: encode request: %w", a.id, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%s: create request: %w", a.id, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", a.id, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", a.id, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Provider: a.id, StatusCode: resp.StatusCode, Type: "api_error", Message: string(data)}
		var body anthropicError
		if json.Unmarshal(data, &body) == nil && body.Error.Message != "" {
			apiErr.Type = body.Error.Type
			apiErr.Message = body.Error.Message
		}
		return "", apiErr
	}

	var out anthropicResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("%s: parse response: %w", a.id, err)
	}

	var text strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(text.String()), nil
}

func newAnthropic(params provider.Params) (provider.Service, error) {
	return NewAnthropicService(params, AnthropicBaseURL)
}
