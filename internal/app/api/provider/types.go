package provider

import "strings"

// Kind discriminates speech-to-text from language-model providers
type Kind string

const (
	KindSTT Kind = "stt"
	KindLLM Kind = "llm"
)

// Kinds lists every provider kind in publishing order
var Kinds = []Kind{KindSTT, KindLLM}

// ID is a stable provider token, used internally and in the external API
type ID string

// STT providers
const (
	AssemblyAI ID = "assemblyai"
	Cartesia   ID = "cartesia"
	Deepgram   ID = "deepgram"
	Whisper    ID = "whisper"
)

// LLM providers
const (
	OpenAI    ID = "openai"
	Gemini    ID = "gemini"
	Anthropic ID = "anthropic"
	Cerebras  ID = "cerebras"
	Groq      ID = "groq"
	Ollama    ID = "ollama"
)

// Descriptor is the static metadata of a catalog entry
type Descriptor struct {
	Kind  Kind
	ID    ID
	Label string

	// IsLocal is true for providers that run without calling a hosted vendor
	IsLocal bool

	// Credential names the environment variable gating availability. For local
	// providers it holds the endpoint URL rather than a secret.
	Credential string

	// ModelSetting optionally names the variable pinning the model
	ModelSetting string
}

// Credentials is the read-only snapshot of provider secrets keyed by
// credential name. A missing or blank value means "not configured".
type Credentials map[string]string

// Get returns the trimmed value for name and whether it is configured
func (c Credentials) Get(name string) (string, bool) {
	if c == nil || name == "" {
		return "", false
	}
	value := strings.TrimSpace(c[name])
	return value, value != ""
}

// Has reports whether name is configured
func (c Credentials) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}
