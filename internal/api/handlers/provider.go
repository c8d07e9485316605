package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tambourine/internal/api/middleware"
	"tambourine/internal/api/services"
)

// ProviderHandler handles provider-related API endpoints
type ProviderHandler struct {
	service services.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		service: service,
	}
}

// Available handles GET /api/providers/available
// Lists the STT and LLM providers whose credentials are configured and whose
// clients were constructed at startup
//
// @Summary List available providers
// @Tags providers
// @Produce json
// @Success 200 {object} dto.AvailableProvidersResponse
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /providers/available [get]
func (h *ProviderHandler) Available(c *gin.Context) {
	resp, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
