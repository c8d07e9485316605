package stt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"tambourine/internal/app/api/provider"
)

// maxErrorBody bounds how much of a failed response is kept in the error
const maxErrorBody = 512

// baseService carries what every STT client shares
type baseService struct {
	id     provider.ID
	pinned string
	model  string
	client *http.Client
}

func newBaseService(params provider.Params) baseService {
	return baseService{
		id:     params.ID,
		pinned: params.PinnedModel,
		model:  params.Model(),
		client: &http.Client{Timeout: params.Timeout},
	}
}

// ID implements provider.Service
func (b *baseService) ID() provider.ID { return b.id }

// ModelName implements provider.Service
func (b *baseService) ModelName() string { return b.pinned }

// do executes req and decodes a 2xx JSON body into out
func (b *baseService) do(req *http.Request, out interface{}) error {
	name := string(b.id)

	resp, err := b.client.Do(req)
	if err != nil {
		return newTranscriptionError(name, "request_failed", true, "HTTP request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTranscriptionError(name, "response_read_failed", true, "failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := string(data)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &TranscriptionError{
			Code:       "api_error",
			Message:    strings.TrimSpace(body),
			Provider:   name,
			StatusCode: resp.StatusCode,
			Retryable:  resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newTranscriptionError(name, "response_parse_failed", false, "failed to parse response: %v", err)
	}
	return nil
}

// multipartAudio builds a form with the audio under "file" plus fields
func multipartAudio(audio []byte, mimeType string, fields map[string]string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", audioFileName(mimeType))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, "", fmt.Errorf("failed to write audio: %w", err)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func audioFileName(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0])) {
	case "audio/mpeg", "audio/mp3":
		return "audio.mp3"
	case "audio/ogg":
		return "audio.ogg"
	case "audio/webm":
		return "audio.webm"
	case "audio/flac":
		return "audio.flac"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return "audio.m4a"
	default:
		return "audio.wav"
	}
}

func contentTypeOrDefault(mimeType string) string {
	if strings.TrimSpace(mimeType) == "" {
		return "audio/wav"
	}
	return mimeType
}

func checkAudio(id provider.ID, audio []byte) error {
	if len(audio) == 0 {
		return newTranscriptionError(string(id), "invalid_input", false, "audio is empty")
	}
	return nil
}
