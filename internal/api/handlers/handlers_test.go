package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tambourine/internal/api/dto"
	"tambourine/internal/api/errors"
	"tambourine/internal/api/middleware"
	"tambourine/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	return router, testutil.NewMockServices(t)
}

func TestProviderHandler_Available(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*testutil.MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "providers listed",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListAvailable", mock.Anything).Return(&dto.AvailableProvidersResponse{
					STT: []dto.ProviderInfo{{Value: "cartesia", Label: "Cartesia"}},
					LLM: []dto.ProviderInfo{{Value: "openai", Label: "OpenAI", Model: "gpt-4o-mini"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				stt := body["stt"].([]interface{})
				require.Len(t, stt, 1)
				first := stt[0].(map[string]interface{})
				assert.Equal(t, "cartesia", first["value"])
				assert.Equal(t, false, first["is_local"])
				_, hasModel := first["model"]
				assert.False(t, hasModel)

				llm := body["llm"].([]interface{})
				assert.Equal(t, "gpt-4o-mini", llm[0].(map[string]interface{})["model"])
			},
		},
		{
			name: "empty lists",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListAvailable", mock.Anything).Return(dto.NewAvailableProvidersResponse(), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, []interface{}{}, body["stt"])
				assert.Equal(t, []interface{}{}, body["llm"])
			},
		},
		{
			name: "service error",
			setupMocks: func(ms *testutil.MockServices) {
				ms.ProviderService.On("ListAvailable", mock.Anything).
					Return(nil, errors.New(errors.KindInternal, "failed to read provider registry"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.NotEmpty(t, body["request_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := NewProviderHandler(mockServices.ProviderService)
			router.GET("/api/providers/available", handler.Available)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/providers/available", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.validateBody(t, body)

			mockServices.ProviderService.AssertExpectations(t)
		})
	}
}

func TestPromptHandler_DefaultSections(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.PromptService.On("DefaultSections", mock.Anything).Return(&dto.DefaultSectionsResponse{
		Main:       "main prompt",
		Advanced:   "advanced prompt",
		Dictionary: "dictionary prompt",
	}, nil)

	handler := NewPromptHandler(mockServices.PromptService)
	router.GET("/api/prompt/sections/default", handler.DefaultSections)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/prompt/sections/default", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"main":"main prompt","advanced":"advanced prompt","dictionary":"dictionary prompt"}`, rec.Body.String())
	mockServices.PromptService.AssertExpectations(t)
}
