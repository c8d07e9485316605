package routes

import (
	"github.com/gin-gonic/gin"
	"tambourine/internal/api/handlers"
	"tambourine/internal/api/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ProviderService services.ProviderService
	PromptService   services.PromptService
}

// RegisterRoutes registers the config API under router (mounted at /api)
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	promptHandler := handlers.NewPromptHandler(container.PromptService)
	prompt := router.Group("/prompt")
	{
		prompt.GET("/sections/default", promptHandler.DefaultSections)
	}

	providerHandler := handlers.NewProviderHandler(container.ProviderService)
	providers := router.Group("/providers")
	{
		providers.GET("/available", providerHandler.Available)
	}
}
