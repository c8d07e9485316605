package provider

import (
	"strings"

	"github.com/samber/lo"
)

// Catalog is the closed, ordered set of supported providers per kind.
// Adding a provider takes a catalog entry here and a creator registered on
// the factory.
type Catalog struct {
	entries map[Kind][]Descriptor
}

// DefaultCatalog returns the built-in provider catalog
func DefaultCatalog() *Catalog {
	return NewCatalog([]Descriptor{
		{Kind: KindSTT, ID: AssemblyAI, Label: "AssemblyAI", Credential: "ASSEMBLYAI_API_KEY", ModelSetting: "ASSEMBLYAI_MODEL"},
		{Kind: KindSTT, ID: Cartesia, Label: "Cartesia", Credential: "CARTESIA_API_KEY", ModelSetting: "CARTESIA_MODEL"},
		{Kind: KindSTT, ID: Deepgram, Label: "Deepgram", Credential: "DEEPGRAM_API_KEY", ModelSetting: "DEEPGRAM_MODEL"},
		{Kind: KindSTT, ID: Whisper, Label: "Whisper (Local)", IsLocal: true, Credential: "WHISPER_SERVER_URL", ModelSetting: "WHISPER_MODEL"},

		{Kind: KindLLM, ID: OpenAI, Label: "OpenAI", Credential: "OPENAI_API_KEY", ModelSetting: "OPENAI_MODEL"},
		{Kind: KindLLM, ID: Gemini, Label: "Google Gemini", Credential: "GOOGLE_API_KEY", ModelSetting: "GEMINI_MODEL"},
		{Kind: KindLLM, ID: Anthropic, Label: "Anthropic", Credential: "ANTHROPIC_API_KEY", ModelSetting: "ANTHROPIC_MODEL"},
		{Kind: KindLLM, ID: Cerebras, Label: "Cerebras", Credential: "CEREBRAS_API_KEY", ModelSetting: "CEREBRAS_MODEL"},
		{Kind: KindLLM, ID: Groq, Label: "Groq", Credential: "GROQ_API_KEY", ModelSetting: "GROQ_MODEL"},
		{Kind: KindLLM, ID: Ollama, Label: "Ollama (Local)", IsLocal: true, Credential: "OLLAMA_BASE_URL", ModelSetting: "OLLAMA_MODEL"},
	})
}

// NewCatalog builds a catalog from descriptors, keeping their order per kind.
// It panics on a duplicate ID within a kind.
func NewCatalog(descriptors []Descriptor) *Catalog {
	c := &Catalog{entries: make(map[Kind][]Descriptor)}
	for _, d := range descriptors {
		if _, exists := c.Descriptor(d.Kind, d.ID); exists {
			panic("provider: duplicate catalog entry " + string(d.Kind) + "/" + string(d.ID))
		}
		c.entries[d.Kind] = append(c.entries[d.Kind], d)
	}
	return c
}

// Descriptor returns the metadata for id within kind
func (c *Catalog) Descriptor(kind Kind, id ID) (Descriptor, bool) {
	return lo.Find(c.entries[kind], func(d Descriptor) bool {
		return d.ID == id
	})
}

// IDs returns the identifiers of kind in catalog order
func (c *Catalog) IDs(kind Kind) []ID {
	return lo.Map(c.entries[kind], func(d Descriptor, _ int) ID {
		return d.ID
	})
}

// Descriptors returns a copy of the entries of kind in catalog order
func (c *Catalog) Descriptors(kind Kind) []Descriptor {
	return append([]Descriptor(nil), c.entries[kind]...)
}

// Lookup resolves a user-supplied token (case-insensitive) to an ID of kind
func (c *Catalog) Lookup(kind Kind, token string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(token)))
	if _, ok := c.Descriptor(kind, id); !ok {
		return "", false
	}
	return id, true
}

// CredentialNames lists every environment name the catalog reads: required
// credentials and optional model pins, without duplicates.
func (c *Catalog) CredentialNames() []string {
	var names []string
	for _, kind := range Kinds {
		for _, d := range c.entries[kind] {
			names = append(names, d.Credential)
			if d.ModelSetting != "" {
				names = append(names, d.ModelSetting)
			}
		}
	}
	return lo.Uniq(names)
}
