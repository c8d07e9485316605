package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"tambourine/internal/app/api/provider"
	"tambourine/internal/config"
)

func testSettings() *config.Settings {
	return &config.Settings{
		DefaultSTTProvider:  "cartesia",
		DefaultLLMProvider:  "cerebras",
		LogLevel:            "error",
		Environment:         "development",
		DictationServerHost: "127.0.0.1",
		DictationServerPort: config.DefaultDictationServerPort,
		ConfigServerHost:    "127.0.0.1",
		ConfigServerPort:    config.DefaultConfigServerPort,
	}
}

func TestInitializeApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	creds := provider.Credentials{
		"DEEPGRAM_API_KEY": "dg-key",
		"OPENAI_API_KEY":   "sk-test",
		"OPENAI_MODEL":     "gpt-4.1-mini",
		"OLLAMA_BASE_URL":  "http://localhost:11434",
	}

	application, cleanup, err := InitializeApplication(testSettings(), creds)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, []provider.ID{provider.Deepgram}, mustRegistry(t, application.Providers, provider.KindSTT).IDs())
	assert.Equal(t, []provider.ID{provider.OpenAI, provider.Ollama}, mustRegistry(t, application.Providers, provider.KindLLM).IDs())

	rec := httptest.NewRecorder()
	application.Server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/providers/available", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"stt": [{"value": "deepgram", "label": "Deepgram", "is_local": false}],
		"llm": [
			{"value": "openai", "label": "OpenAI", "is_local": false, "model": "gpt-4.1-mini"},
			{"value": "ollama", "label": "Ollama (Local)", "is_local": true}
		]
	}`, rec.Body.String())

	rec = httptest.NewRecorder()
	application.Server.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `tambourine_provider_builds_total{kind="stt",outcome="unavailable",provider="cartesia"} 1`)
}

func TestInitializeApplication_BadLogLevel(t *testing.T) {
	settings := testSettings()
	settings.LogLevel = "loud"

	_, _, err := InitializeApplication(settings, provider.Credentials{})
	assert.Error(t, err)
}

func TestInitializeProviderService(t *testing.T) {
	service, cleanup, err := InitializeProviderService(testSettings(), provider.Credentials{"WHISPER_SERVER_URL": "http://127.0.0.1:8080/"})
	require.NoError(t, err)
	defer cleanup()

	resp, err := service.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.STT, 1)
	assert.Equal(t, "whisper", resp.STT[0].Value)
	assert.True(t, resp.STT[0].IsLocal)
	assert.Empty(t, resp.LLM)
}

func TestApplication_ResolveDefault(t *testing.T) {
	catalog := provider.DefaultCatalog()
	factory := provideFactory(catalog)
	set := provider.NewBuilder(catalog, factory, nil, nil).BuildAll(provider.Credentials{
		"GROQ_API_KEY":   "gsk",
		"OPENAI_API_KEY": "sk",
	})

	tests := []struct {
		name       string
		kind       provider.Kind
		configured string
		wantID     provider.ID
		wantOK     bool
		wantLog    string
	}{
		{name: "configured available", kind: provider.KindLLM, configured: "GROQ", wantID: provider.Groq, wantOK: true},
		{name: "configured unavailable", kind: provider.KindLLM, configured: "cerebras", wantID: provider.OpenAI, wantOK: true, wantLog: "default_provider_unavailable"},
		{name: "unknown token", kind: provider.KindLLM, configured: "mystery", wantID: provider.OpenAI, wantOK: true, wantLog: "unknown_default_provider"},
		{name: "nothing available", kind: provider.KindSTT, configured: "cartesia", wantOK: false, wantLog: "no_provider_available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			application := &Application{Logger: zap.New(core), Catalog: catalog, Providers: set}

			id, ok := application.ResolveDefault(tt.kind, tt.configured)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if tt.wantLog == "" {
				assert.Zero(t, logs.Len())
				return
			}
			assert.Equal(t, 1, logs.FilterMessage(tt.wantLog).Len())
		})
	}
}

func mustRegistry(t *testing.T, set *provider.Set, kind provider.Kind) *provider.Registry {
	t.Helper()
	reg, err := set.Registry(kind)
	require.NoError(t, err)
	return reg
}
