package config

import "time"

// Provider default configuration constants
const (
	// Timeout defaults
	DefaultHostedSTTTimeout = 60 * time.Second
	DefaultHostedLLMTimeout = 60 * time.Second
	DefaultLocalTimeout     = 120 * time.Second

	// Cerebras has a higher transient timeout rate; its calls retry once
	// after this bound.
	DefaultCerebrasRetryTimeout = 10 * time.Second

	// Anthropic requires max_tokens on every request
	DefaultMaxTokens = 4096

	// AssemblyAI transcripts are asynchronous and polled
	DefaultAssemblyAIPollInterval = 500 * time.Millisecond
)

// Model defaults used when no <PROVIDER>_MODEL pin is set
const (
	DefaultAssemblyAIModel = "best"
	DefaultCartesiaModel   = "ink-whisper"
	DefaultDeepgramModel   = "nova-3"
	DefaultOpenAIModel     = "gpt-4.1"
	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultAnthropicModel  = "claude-sonnet-4-20250514"
	DefaultCerebrasModel   = "llama-3.3-70b"
	DefaultGroqModel       = "llama-3.3-70b-versatile"
	DefaultOllamaModel     = "llama3.2"
)

// ProviderDefaults holds the construction parameters hard-coded per provider.
// They are a property of the provider, never of the caller.
type ProviderDefaults struct {
	Timeout        time.Duration
	RetryOnTimeout bool
	RetryTimeout   time.Duration
	Model          string
}

// GetProviderDefaults returns default configuration for a given provider type
func GetProviderDefaults(providerType string) ProviderDefaults {
	switch providerType {
	case "assemblyai":
		return ProviderDefaults{Timeout: DefaultHostedSTTTimeout, Model: DefaultAssemblyAIModel}
	case "cartesia":
		return ProviderDefaults{Timeout: DefaultHostedSTTTimeout, Model: DefaultCartesiaModel}
	case "deepgram":
		return ProviderDefaults{Timeout: DefaultHostedSTTTimeout, Model: DefaultDeepgramModel}
	case "whisper":
		// whisper-server manages its model itself
		return ProviderDefaults{Timeout: DefaultLocalTimeout}
	case "openai":
		return ProviderDefaults{Timeout: DefaultHostedLLMTimeout, Model: DefaultOpenAIModel}
	case "gemini":
		return ProviderDefaults{Timeout: DefaultHostedLLMTimeout, Model: DefaultGeminiModel}
	case "anthropic":
		return ProviderDefaults{Timeout: DefaultHostedLLMTimeout, Model: DefaultAnthropicModel}
	case "cerebras":
		return ProviderDefaults{
			Timeout:        DefaultHostedLLMTimeout,
			RetryOnTimeout: true,
			RetryTimeout:   DefaultCerebrasRetryTimeout,
			Model:          DefaultCerebrasModel,
		}
	case "groq":
		return ProviderDefaults{Timeout: DefaultHostedLLMTimeout, Model: DefaultGroqModel}
	case "ollama":
		return ProviderDefaults{Timeout: DefaultLocalTimeout, Model: DefaultOllamaModel}
	default:
		// Return sensible defaults for unknown providers
		return ProviderDefaults{Timeout: 60 * time.Second}
	}
}
