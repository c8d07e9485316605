package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

// AssemblyAIBaseURL is the hosted AssemblyAI API
const AssemblyAIBaseURL = "https://api.assemblyai.com"

// AssemblyAIService uploads audio, submits a transcript job and polls it
type AssemblyAIService struct {
	baseService
	apiKey       string
	baseURL      string
	pollInterval time.Duration
}

type assemblyUploadResponse struct {
	UploadURL string `json:"upload_url"`
}

type assemblyTranscriptRequest struct {
	AudioURL    string `json:"audio_url"`
	SpeechModel string `json:"speech_model,omitempty"`
}

type assemblyTranscript struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

// NewAssemblyAIService creates an AssemblyAI client against baseURL
func NewAssemblyAIService(params provider.Params, baseURL string) (*AssemblyAIService, error) {
	if err := provider.CheckAPIKey(params.Secret); err != nil {
		return nil, err
	}
	return &AssemblyAIService{
		baseService:  newBaseService(params),
		apiKey:       params.Secret,
		baseURL:      strings.TrimRight(baseURL, "/"),
		pollInterval: config.DefaultAssemblyAIPollInterval,
	}, nil
}

// Transcribe implements provider.STTService
func (a *AssemblyAIService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if err := checkAudio(a.id, audio); err != nil {
		return "", err
	}

	uploadURL, err := a.upload(ctx, audio)
	if err != nil {
		return "", err
	}

	job, err := a.submit(ctx, uploadURL)
	if err != nil {
		return "", err
	}

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		switch job.Status {
		case "completed":
			return strings.TrimSpace(job.Text), nil
		case "error":
			return "", newTranscriptionError(string(a.id), "transcription_failed", false, "%s", job.Error)
		}

		select {
		case <-ctx.Done():
			return "", newTranscriptionError(string(a.id), "canceled", true, "transcript %s: %v", job.ID, ctx.Err())
		case <-ticker.C:
		}

		job, err = a.poll(ctx, job.ID)
		if err != nil {
			return "", err
		}
	}
}

func (a *AssemblyAIService) upload(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/upload", bytes.NewReader(audio))
	if err != nil {
		return "", newTranscriptionError(string(a.id), "request_creation_failed", false, "failed to create upload request: %v", err)
	}
	req.Header.Set("Authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	var resp assemblyUploadResponse
	if err := a.do(req, &resp); err != nil {
		return "", err
	}
	if resp.UploadURL == "" {
		return "", newTranscriptionError(string(a.id), "upload_failed", false, "upload returned no url")
	}
	return resp.UploadURL, nil
}

func (a *AssemblyAIService) submit(ctx context.Context, audioURL string) (*assemblyTranscript, error) {
	payload, err := json.Marshal(assemblyTranscriptRequest{AudioURL: audioURL, SpeechModel: a.model})
	if err != nil {
		return nil, newTranscriptionError(string(a.id), "request_creation_failed", false, "failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v2/transcript", bytes.NewReader(payload))
	if err != nil {
		return nil, newTranscriptionError(string(a.id), "request_creation_failed", false, "failed to create transcript request: %v", err)
	}
	req.Header.Set("Authorization", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var job assemblyTranscript
	if err := a.do(req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (a *AssemblyAIService) poll(ctx context.Context, id string) (*assemblyTranscript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/v2/transcript/"+id, nil)
	if err != nil {
		return nil, newTranscriptionError(string(a.id), "request_creation_failed", false, "failed to create poll request: %v", err)
	}
	req.Header.Set("Authorization", a.apiKey)

	var job assemblyTranscript
	if err := a.do(req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func newAssemblyAI(params provider.Params) (provider.Service, error) {
	return NewAssemblyAIService(params, AssemblyAIBaseURL)
}
