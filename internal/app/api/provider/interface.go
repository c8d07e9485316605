package provider

import (
	"context"
	"time"
)

// Service is a constructed provider client bound to one identifier.
// Every variant implements ModelName so callers never probe for it.
type Service interface {
	// ID returns the provider this instance was built for
	ID() ID

	// ModelName returns the operator-pinned model, or "" when the vendor
	// default is used
	ModelName() string
}

// STTService is a speech-to-text client
type STTService interface {
	Service

	// Transcribe converts a complete audio clip to text
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// LLMService is a language-model client
type LLMService interface {
	Service

	// Complete returns the model's reply to a system prompt and user message
	Complete(ctx context.Context, system, user string) (string, error)
}

// Params are the per-provider construction parameters handed to a Creator.
// They are fixed per provider (see config.GetProviderDefaults) apart from
// PinnedModel, which comes from the provider's optional model setting.
type Params struct {
	Kind           Kind
	ID             ID
	Secret         string
	PinnedModel    string
	DefaultModel   string
	RetryOnTimeout bool
	RetryTimeout   time.Duration
	Timeout        time.Duration
}

// Model returns the model to request: the pin if any, else the default
func (p Params) Model() string {
	if p.PinnedModel != "" {
		return p.PinnedModel
	}
	return p.DefaultModel
}

// Creator builds one client instance. It must not perform network I/O.
type Creator func(params Params) (Service, error)

// Factory constructs provider instances from a credential snapshot
type Factory interface {
	// Construct builds the client for id of kind, failing with
	// ErrMissingCredential, ErrUnknownProvider or ErrConstructionFailure
	Construct(kind Kind, id ID, creds Credentials) (Service, error)
}
