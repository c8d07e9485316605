//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"tambourine/internal/api/services"
	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

// InitializeApplication builds the provider registries from creds and the
// HTTP surface that publishes them
func InitializeApplication(settings *config.Settings, creds provider.Credentials) (*Application, func(), error) {
	wire.Build(ProviderSet, ServerSet, wire.Struct(new(Application), "*"))
	return &Application{}, nil, nil
}

// InitializeProviderService builds the registries without the HTTP surface
func InitializeProviderService(settings *config.Settings, creds provider.Credentials) (services.ProviderService, func(), error) {
	wire.Build(ProviderSet, services.NewProviderService)
	return nil, nil, nil
}
