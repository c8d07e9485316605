// Package llm holds the language-model provider clients.
package llm

import "tambourine/internal/app/api/provider"

// Register adds a creator for every LLM provider in the catalog
func Register(factory *provider.DefaultFactory) {
	factory.Register(provider.KindLLM, provider.OpenAI, newOpenAI)
	factory.Register(provider.KindLLM, provider.Gemini, newGemini)
	factory.Register(provider.KindLLM, provider.Anthropic, newAnthropic)
	factory.Register(provider.KindLLM, provider.Cerebras, newCerebras)
	factory.Register(provider.KindLLM, provider.Groq, newGroq)
	factory.Register(provider.KindLLM, provider.Ollama, newOllama)
}
