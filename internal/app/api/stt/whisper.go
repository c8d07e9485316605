package stt

import (
	"context"
	"net/http"
	"strings"

	"tambourine/internal/app/api/provider"
)

const whisperInferencePath = "/inference"

// WhisperService transcribes via HTTP to a self-hosted whisper-server instance
type WhisperService struct {
	baseService
	baseURL string
}

type whisperResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// NewWhisperService creates a whisper-server client. The provider secret is
// the server base URL.
func NewWhisperService(params provider.Params) (*WhisperService, error) {
	baseURL, err := provider.ParseEndpoint(params.Secret)
	if err != nil {
		return nil, err
	}
	return &WhisperService{
		baseService: newBaseService(params),
		baseURL:     baseURL,
	}, nil
}

// Transcribe implements provider.STTService
func (w *WhisperService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := checkAudio(w.id, audio); err != nil {
		return "", err
	}

	fields := map[string]string{
		"response_format": "json",
		"temperature":     "0.00",
	}
	// whisper-server can swap models per request when one is pinned
	if w.model != "" {
		fields["model"] = w.model
	}

	body, contentType, err := multipartAudio(audio, mimeType, fields)
	if err != nil {
		return "", newTranscriptionError(string(w.id), "form_creation_failed", false, "%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+whisperInferencePath, body)
	if err != nil {
		return "", newTranscriptionError(string(w.id), "request_creation_failed", false, "failed to create HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)

	var resp whisperResponse
	if err := w.do(req, &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

func newWhisper(params provider.Params) (provider.Service, error) {
	return NewWhisperService(params)
}
