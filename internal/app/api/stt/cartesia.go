package stt

import (
	"context"
	"net/http"
	"strings"

	"tambourine/internal/app/api/provider"
)

const (
	// CartesiaBaseURL is the hosted Cartesia API
	CartesiaBaseURL = "https://api.cartesia.ai"

	cartesiaVersion = "2025-04-16"
)

// CartesiaService transcribes through Cartesia's batch STT endpoint
type CartesiaService struct {
	baseService
	apiKey  string
	baseURL string
}

type cartesiaResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// NewCartesiaService creates a Cartesia client against baseURL
func NewCartesiaService(params provider.Params, baseURL string) (*CartesiaService, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return &CartesiaService{
		baseService: newBaseService(params),
		apiKey:      params.Secret,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}, nil
}

// Transcribe implements provider.STTService
func (c *CartesiaService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := checkAudio(c.id, audio); err != nil {
		return "", err
	}

	body, contentType, err := multipartAudio(audio, mimeType, map[string]string{
		"model": c.model,
	})
	if err != nil {
		return "", newTranscriptionError(string(c.id), "form_creation_failed", false, "%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stt", body)
	if err != nil {
		return "", newTranscriptionError(string(c.id), "request_creation_failed", false, "failed to create HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Cartesia-Version", cartesiaVersion)

	var resp cartesiaResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

func newCartesia(params provider.Params) (provider.Service, error) {
	return NewCartesiaService(params, CartesiaBaseURL)
}
