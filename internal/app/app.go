package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"tambourine/internal/api/routes"
	"tambourine/internal/api/server"
	"tambourine/internal/api/services"
	"tambourine/internal/app/api/llm"
	"tambourine/internal/app/api/provider"
	"tambourine/internal/app/api/stt"
	"tambourine/internal/app/logger"
	"tambourine/internal/config"
)

// Application is the assembled process: settings, the built provider set and
// the HTTP surface publishing it.
type Application struct {
	Settings  *config.Settings
	Logger    *zap.Logger
	Catalog   *provider.Catalog
	Providers *provider.Set
	Server    *server.Server
}

// ProviderSet builds the provider registries from a credentials snapshot
var ProviderSet = wire.NewSet(
	provideLogger,
	provider.DefaultCatalog,
	provideFactory,
	wire.Bind(new(provider.Factory), new(*provider.DefaultFactory)),
	prometheus.NewRegistry,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	provider.NewBuildMetrics,
	provider.NewBuilder,
	provideProviders,
)

// ServerSet builds the config HTTP surface over the provider set
var ServerSet = wire.NewSet(
	services.NewProviderService,
	services.NewPromptService,
	wire.Struct(new(routes.ServiceContainer), "*"),
	provideServerConfig,
	server.NewServer,
)

func provideLogger(settings *config.Settings) (*zap.Logger, func(), error) {
	l, err := logger.New(settings.LogLevel, !settings.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = l.Sync()
	}
	return l, cleanup, nil
}

// provideFactory registers every STT and LLM constructor the binary ships
func provideFactory(catalog *provider.Catalog) *provider.DefaultFactory {
	factory := provider.NewProviderFactory(catalog)
	stt.Register(factory)
	llm.Register(factory)
	return factory
}

func provideProviders(builder *provider.Builder, creds provider.Credentials) *provider.Set {
	return builder.BuildAll(creds)
}

func provideServerConfig(settings *config.Settings) server.Config {
	return server.DefaultConfig(settings.ConfigServerHost, settings.ConfigServerPort, settings.Environment)
}

// LoadCredentials snapshots every credential variable the catalog names
func LoadCredentials(catalog *provider.Catalog) provider.Credentials {
	return provider.Credentials(config.LoadCredentials(catalog.CredentialNames()))
}

// ResolveDefault maps the configured default of kind to an available
// provider. It warns when the configured one is unknown or unavailable and
// another registered provider is used instead.
func (a *Application) ResolveDefault(kind provider.Kind, configured string) (provider.ID, bool) {
	preferred, known := a.Catalog.Lookup(kind, configured)
	if !known {
		a.Logger.Warn("unknown_default_provider",
			zap.String("kind", string(kind)),
			zap.String("provider", configured),
		)
	}

	id, ok := a.Providers.Default(kind, preferred)
	if !ok {
		a.Logger.Warn("no_provider_available", zap.String("kind", string(kind)))
		return "", false
	}
	if known && id != preferred {
		a.Logger.Warn("default_provider_unavailable",
			zap.String("kind", string(kind)),
			zap.String("provider", configured),
			zap.String("fallback", string(id)),
		)
	}
	return id, true
}
