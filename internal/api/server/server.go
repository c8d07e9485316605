package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "tambourine/docs" // Generated swagger docs
	"tambourine/internal/api/middleware"
	"tambourine/internal/api/routes"
)

// Config represents API server configuration
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Environment     string
}

// DefaultConfig returns the server timeouts used when only the address is set
func DefaultConfig(host string, port int, environment string) Config {
	return Config{
		Host:            host,
		Port:            port,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		Environment:     environment,
	}
}

// Address returns host:port
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	errs       chan error
}

// NewServer creates a new API server. gatherer backs /metrics; a nil
// gatherer uses the default prometheus registry.
func NewServer(
	config Config,
	container *routes.ServiceContainer,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger, "/health", "/metrics"))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.NoRoute(middleware.NotFound())
	router.NoMethod(middleware.MethodNotAllowed())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	routes.RegisterRoutes(api, container)

	httpServer := &http.Server{
		Addr:         config.Address(),
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
		errs:       make(chan error, 1),
	}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; later serve errors arrive on Errors.
func (s *Server) Start() error {
	s.logger.Info("starting_config_server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("config_server_failed", zap.Error(err))
			s.errs <- err
		}
		close(s.errs)
	}()

	s.logger.Info("config_server_started", zap.String("address", listener.Addr().String()))
	return nil
}

// Errors reports a serve failure after Start; it is closed when serving stops
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting_down_config_server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("config_server_forced_shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("config_server_stopped")
	return nil
}

// ShutdownTimeout returns how long Shutdown may wait for in-flight requests
func (s *Server) ShutdownTimeout() time.Duration {
	return s.config.ShutdownTimeout
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
