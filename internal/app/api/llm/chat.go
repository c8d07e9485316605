package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"tambourine/internal/app/api/provider"
)

// OpenAI-compatible endpoints
const (
	GroqBaseURL     = "https://api.groq.com/openai/v1"
	CerebrasBaseURL = "https://api.cerebras.ai/v1"

	// ollama ignores the bearer token but go-openai always sends one
	ollamaToken = "ollama"
)

// ChatService talks to any OpenAI-compatible chat completions API. It backs
// OpenAI, Groq, Cerebras and Ollama.
type ChatService struct {
	id     provider.ID
	pinned string
	model  string
	client *openai.Client

	retryOnTimeout bool
	retryTimeout   time.Duration
}

// NewChatService creates a chat client. An empty baseURL targets OpenAI.
func NewChatService(params provider.Params, token, baseURL string) *ChatService {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: params.Timeout}

	return &ChatService{
		id:             params.ID,
		pinned:         params.PinnedModel,
		model:          params.Model(),
		client:         openai.NewClientWithConfig(cfg),
		retryOnTimeout: params.RetryOnTimeout && params.RetryTimeout > 0,
		retryTimeout:   params.RetryTimeout,
	}
}

// ID implements provider.Service
func (c *ChatService) ID() provider.ID { return c.id }

// ModelName implements provider.Service
func (c *ChatService) ModelName() string { return c.pinned }

// Complete implements provider.LLMService. Providers constructed with
// RetryOnTimeout bound each attempt by the retry timeout and try once more
// when the first attempt times out.
func (c *ChatService) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.retryOnTimeout {
		return c.complete(ctx, system, user)
	}

	var (
		text string
		err  error
	)
	for attempt := 0; attempt < 2; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.retryTimeout)
		text, err = c.complete(attemptCtx, system, user)
		cancel()

		if err == nil || ctx.Err() != nil || !isTimeout(err) {
			return text, err
		}
	}
	return "", fmt.Errorf("%s: timed out after retry: %w", c.id, err)
}

func (c *ChatService) complete(ctx context.Context, system, user string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: response has no choices", c.id)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func newOpenAI(params provider.Params) (provider.Service, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return NewChatService(params, params.Secret, ""), nil
}

func newGroq(params provider.Params) (provider.Service, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return NewChatService(params, params.Secret, GroqBaseURL), nil
}

func newCerebras(params provider.Params) (provider.Service, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return NewChatService(params, params.Secret, CerebrasBaseURL), nil
}

// newOllama treats the credential as the server base URL
func newOllama(params provider.Params) (provider.Service, error) {
	baseURL, err := provider.ParseEndpoint(params.Secret)
	if err != nil {
		return nil, err
	}
	return NewChatService(params, ollamaToken, baseURL+"/v1"), nil
}
