package stt

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"tambourine/internal/app/api/provider"
)

// DeepgramBaseURL is the hosted Deepgram API
const DeepgramBaseURL = "https://api.deepgram.com"

// DeepgramService transcribes through Deepgram's pre-recorded audio endpoint
type DeepgramService struct {
	baseService
	apiKey  string
	baseURL string
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// NewDeepgramService creates a Deepgram client against baseURL
func NewDeepgramService(params provider.Params, baseURL string) (*DeepgramService, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return &DeepgramService{
		baseService: newBaseService(params),
		apiKey:      params.Secret,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}, nil
}

// Transcribe implements provider.STTService
func (d *DeepgramService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := checkAudio(d.id, audio); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("model", d.model)
	query.Set("smart_format", "true")
	query.Set("punctuate", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v1/listen?"+query.Encode(), bytes.NewReader(audio))
	if err != nil {
		return "", newTranscriptionError(string(d.id), "request_creation_failed", false, "failed to create HTTP request: %v", err)
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	req.Header.Set("Content-Type", contentTypeOrDefault(mimeType))

	var resp deepgramResponse
	if err := d.do(req, &resp); err != nil {
		return "", err
	}

	if len(resp.Results.Channels) == 0 || len(resp.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Results.Channels[0].Alternatives[0].Transcript), nil
}

func newDeepgram(params provider.Params) (provider.Service, error) {
	return NewDeepgramService(params, DeepgramBaseURL)
}
