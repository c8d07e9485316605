package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
	"tambourine/internal/app/api/provider"
)

// GeminiService calls the Gemini API through the genai SDK
type GeminiService struct {
	id     provider.ID
	pinned string
	model  string
	client *genai.Client
}

// NewGeminiService creates a Gemini client. baseURL overrides the API host
// when non-empty. Creating the client performs no network I/O.
func NewGeminiService(params provider.Params, baseURL string) (*GeminiService, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}

	cfg := &genai.ClientConfig{
		APIKey:     params.Secret,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: params.Timeout},
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiService{
		id:     params.ID,
		pinned: params.PinnedModel,
		model:  params.Model(),
		client: client,
	}, nil
}

// ID implements provider.Service
func (g *GeminiService) ID() provider.ID { return g.id }

// ModelName implements provider.Service
func (g *GeminiService) ModelName() string { return g.pinned }

// Complete implements provider.LLMService
func (g *GeminiService) Complete(ctx context.Context, system, user string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("%s: generate content: %w", g.id, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func newGemini(params provider.Params) (provider.Service, error) {
	return NewGeminiService(params, "")
}
