package services

import (
	"context"

	"tambourine/internal/api/dto"
	"tambourine/internal/app/prompt"
)

// PromptServiceImpl implements PromptService from the built-in defaults
type PromptServiceImpl struct {
	sections prompt.Sections
}

// NewPromptService creates a new prompt service
func NewPromptService() PromptService {
	return &PromptServiceImpl{
		sections: prompt.Defaults(),
	}
}

// DefaultSections returns the default prompt sections
func (s *PromptServiceImpl) DefaultSections(ctx context.Context) (*dto.DefaultSectionsResponse, error) {
	return dto.ToDefaultSectionsResponse(s.sections), nil
}
