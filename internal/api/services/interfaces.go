package services

import (
	"context"

	"tambourine/internal/api/dto"
)

// ProviderService defines the interface for provider operations
type ProviderService interface {
	ListAvailable(ctx context.Context) (*dto.AvailableProvidersResponse, error)
}

// PromptService defines the interface for prompt operations
type PromptService interface {
	DefaultSections(ctx context.Context) (*dto.DefaultSectionsResponse, error)
}
