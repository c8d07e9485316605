package testutil

import "tambourine/internal/app/api/provider"

// AllCredentials returns a snapshot satisfying every catalog entry, with no
// model pins
func AllCredentials() provider.Credentials {
	return provider.Credentials{
		"ASSEMBLYAI_API_KEY": "aai-test",
		"CARTESIA_API_KEY":   "sk_car_test",
		"DEEPGRAM_API_KEY":   "dg-test",
		"WHISPER_SERVER_URL": "http://127.0.0.1:8080",
		"OPENAI_API_KEY":     "sk-test",
		"GOOGLE_API_KEY":     "AIza-test",
		"ANTHROPIC_API_KEY":  "sk-ant-test",
		"CEREBRAS_API_KEY":   "csk-test",
		"GROQ_API_KEY":       "gsk_test",
		"OLLAMA_BASE_URL":    "http://127.0.0.1:11434",
	}
}

// AllProviderInfos lists the published entries for AllCredentials in
// catalog order
var AllProviderInfos = map[provider.Kind][]struct {
	Value   string
	Label   string
	IsLocal bool
}{
	provider.KindSTT: {
		{"assemblyai", "AssemblyAI", false},
		{"cartesia", "Cartesia", false},
		{"deepgram", "Deepgram", false},
		{"whisper", "Whisper (Local)", true},
	},
	provider.KindLLM: {
		{"openai", "OpenAI", false},
		{"gemini", "Google Gemini", false},
		{"anthropic", "Anthropic", false},
		{"cerebras", "Cerebras", false},
		{"groq", "Groq", false},
		{"ollama", "Ollama (Local)", true},
	},
}
