package stt

import "fmt"

// TranscriptionError describes a failed transcription call
type TranscriptionError struct {
	Code       string
	Message    string
	Provider   string
	StatusCode int
	Retryable  bool
}

func (e *TranscriptionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Code, e.Message)
}

func newTranscriptionError(provider, code string, retryable bool, format string, args ...interface{}) *TranscriptionError {
	return &TranscriptionError{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		Provider:  provider,
		Retryable: retryable,
	}
}
