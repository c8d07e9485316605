package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"tambourine/internal/api/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	ProviderService *MockProviderService
	PromptService   *MockPromptService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		ProviderService: NewMockProviderService(t),
		PromptService:   NewMockPromptService(t),
	}
}

// MockProviderService is a mock implementation of ProviderService
type MockProviderService struct {
	mock.Mock
}

func NewMockProviderService(t *testing.T) *MockProviderService {
	m := &MockProviderService{}
	m.Test(t)
	return m
}

func (m *MockProviderService) ListAvailable(ctx context.Context) (*dto.AvailableProvidersResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AvailableProvidersResponse), args.Error(1)
}

// MockPromptService is a mock implementation of PromptService
type MockPromptService struct {
	mock.Mock
}

func NewMockPromptService(t *testing.T) *MockPromptService {
	m := &MockPromptService{}
	m.Test(t)
	return m
}

func (m *MockPromptService) DefaultSections(ctx context.Context) (*dto.DefaultSectionsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DefaultSectionsResponse), args.Error(1)
}
