package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"tambourine/internal/app"
	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

var (
	host string
	port int
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "config server host (overrides CONFIG_SERVER_HOST)")
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "config server port (overrides CONFIG_SERVER_PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the provider registries and serve the config API",
	Long: `Build the provider registries and serve the config API

- Only providers whose credential is set are constructed
- A provider that fails to construct is logged and skipped
- The process stops on SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, envPath, err := config.InitializeConfig()
		if err != nil {
			return err
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			settings.LogLevel = "debug"
		}
		if host != "" {
			settings.ConfigServerHost = host
		}
		if port != 0 {
			settings.ConfigServerPort = port
		}
		if err := config.ValidateSettings(settings); err != nil {
			return err
		}

		creds := app.LoadCredentials(provider.DefaultCatalog())
		application, cleanup, err := app.InitializeApplication(settings, creds)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		defer cleanup()

		return run(cmd.Context(), application, envPath)
	},
}

func run(ctx context.Context, application *app.Application, envPath string) error {
	logger := application.Logger
	settings := application.Settings

	if envPath != "" {
		logger.Info("loaded_env_file", zap.String("path", envPath))
	} else {
		logger.Info("no_env_file_found")
	}
	logger.Info("dictation_transport",
		zap.String("address", settings.DictationAddress()),
	)

	configured := map[provider.Kind]string{
		provider.KindSTT: settings.DefaultSTTProvider,
		provider.KindLLM: settings.DefaultLLMProvider,
	}
	for _, kind := range provider.Kinds {
		if id, ok := application.ResolveDefault(kind, configured[kind]); ok {
			logger.Info("default_provider",
				zap.String("kind", string(kind)),
				zap.String("provider", string(id)),
			)
		}
	}

	if err := application.Server.Start(); err != nil {
		return fmt.Errorf("failed to start config server: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown_signal_received")
	case err, ok := <-application.Server.Errors():
		if ok {
			serveErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), application.Server.ShutdownTimeout())
	defer cancel()
	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return serveErr
}
