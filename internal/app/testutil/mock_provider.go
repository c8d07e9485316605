package testutil

import (
	"context"
	"fmt"

	"tambourine/internal/app/api/provider"
)

// StubService implements provider.STTService and provider.LLMService without
// any network access
type StubService struct {
	ProviderID provider.ID
	Model      string
	Reply      string
}

func (s *StubService) ID() provider.ID   { return s.ProviderID }
func (s *StubService) ModelName() string { return s.Model }

func (s *StubService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return s.Reply, nil
}

func (s *StubService) Complete(ctx context.Context, system, user string) (string, error) {
	return s.Reply, nil
}

// StubCreator builds a StubService carrying the pinned model
func StubCreator(params provider.Params) (provider.Service, error) {
	return &StubService{ProviderID: params.ID, Model: params.PinnedModel, Reply: "stub"}, nil
}

// FailingCreator returns a creator that always fails with message
func FailingCreator(message string) provider.Creator {
	return func(params provider.Params) (provider.Service, error) {
		return nil, fmt.Errorf("%s", message)
	}
}

// NewStubFactory registers StubCreator for every catalog entry
func NewStubFactory(catalog *provider.Catalog) *provider.DefaultFactory {
	factory := provider.NewProviderFactory(catalog)
	for _, kind := range provider.Kinds {
		for _, id := range catalog.IDs(kind) {
			factory.Register(kind, id, StubCreator)
		}
	}
	return factory
}

// BuildStubSet builds a provider set from creds using stub services
func BuildStubSet(creds provider.Credentials) *provider.Set {
	catalog := provider.DefaultCatalog()
	return provider.NewBuilder(catalog, NewStubFactory(catalog), nil, nil).BuildAll(creds)
}
