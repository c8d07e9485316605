package providers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"tambourine/internal/api/dto"
)

func sampleResponse() *dto.AvailableProvidersResponse {
	return &dto.AvailableProvidersResponse{
		STT: []dto.ProviderInfo{
			{Value: "whisper", Label: "Whisper (Local)", IsLocal: true},
		},
		LLM: []dto.ProviderInfo{
			{Value: "openai", Label: "OpenAI", Model: "gpt-4.1-mini"},
			{Value: "groq", Label: "Groq"},
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleResponse(), formatJSON))

		assert.JSONEq(t, `{
			"stt": [{"value": "whisper", "label": "Whisper (Local)", "is_local": true}],
			"llm": [
				{"value": "openai", "label": "OpenAI", "is_local": false, "model": "gpt-4.1-mini"},
				{"value": "groq", "label": "Groq", "is_local": false}
			]
		}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleResponse(), formatYAML))

		var decoded map[string][]map[string]interface{}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded["llm"], 2)
		assert.Equal(t, "gpt-4.1-mini", decoded["llm"][0]["model"])
		assert.NotContains(t, decoded["llm"][1], "model")
		assert.Equal(t, true, decoded["stt"][0]["is_local"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, sampleResponse(), formatTable))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "KIND"))
		assert.Equal(t, []string{"stt", "whisper", "Whisper", "(Local)", "true", "-"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"llm", "openai", "OpenAI", "false", "gpt-4.1-mini"}, strings.Fields(lines[2]))
		assert.Equal(t, []string{"llm", "groq", "Groq", "false", "-"}, strings.Fields(lines[3]))
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, dto.NewAvailableProvidersResponse(), formatTable))
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})

	t.Run("unknown format", func(t *testing.T) {
		err := render(&bytes.Buffer{}, sampleResponse(), "xml")
		assert.EqualError(t, err, `unknown output format "xml"`)
	})
}

func TestJSONMatchesAPIShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, dto.NewAvailableProvidersResponse(), formatJSON))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.JSONEq(t, `[]`, string(decoded["stt"]))
	assert.JSONEq(t, `[]`, string(decoded["llm"]))
}
