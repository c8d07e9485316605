package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tambourine/internal/api/middleware"
	"tambourine/internal/api/services"
)

// PromptHandler handles prompt-related API endpoints
type PromptHandler struct {
	service services.PromptService
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(service services.PromptService) *PromptHandler {
	return &PromptHandler{
		service: service,
	}
}

// DefaultSections handles GET /api/prompt/sections/default
//
// @Summary Get default prompt sections
// @Tags prompt
// @Produce json
// @Success 200 {object} dto.DefaultSectionsResponse
// @Router /prompt/sections/default [get]
func (h *PromptHandler) DefaultSections(c *gin.Context) {
	resp, err := h.service.DefaultSections(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
