package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	apperrors "tambourine/internal/app/errors"
)

// fakeService implements both STTService and LLMService for testing
type fakeService struct {
	id    ID
	model string
}

func (f *fakeService) ID() ID            { return f.id }
func (f *fakeService) ModelName() string { return f.model }

func (f *fakeService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return "transcript", nil
}

func (f *fakeService) Complete(ctx context.Context, system, user string) (string, error) {
	return "reply", nil
}

func fakeCreator(params Params) (Service, error) {
	return &fakeService{id: params.ID, model: params.PinnedModel}, nil
}

// newTestFactory registers fakeCreator for every catalog entry
func newTestFactory(catalog *Catalog) *DefaultFactory {
	factory := NewProviderFactory(catalog)
	for _, kind := range Kinds {
		for _, id := range catalog.IDs(kind) {
			factory.Register(kind, id, fakeCreator)
		}
	}
	return factory
}

func allCredentials(catalog *Catalog) Credentials {
	creds := Credentials{}
	for _, kind := range Kinds {
		for _, d := range catalog.Descriptors(kind) {
			creds[d.Credential] = "secret-" + string(d.ID)
		}
	}
	return creds
}

func TestBuilder_Build_KeysAreCatalogSubset(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)

	credentialSets := []Credentials{
		nil,
		{},
		{"CARTESIA_API_KEY": "k"},
		{"OPENAI_API_KEY": "k", "UNRELATED_KEY": "x"},
		allCredentials(catalog),
	}

	for i, creds := range credentialSets {
		t.Run(fmt.Sprintf("set-%d", i), func(t *testing.T) {
			for _, kind := range Kinds {
				reg := builder.Build(kind, creds)
				require.NotNil(t, reg)
				assert.Equal(t, kind, reg.Kind())
				assert.Subset(t, catalog.IDs(kind), reg.IDs())
			}
		})
	}
}

func TestBuilder_Build_SkipsAbsentCredentials(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)

	creds := Credentials{
		"ASSEMBLYAI_API_KEY": "",
		"DEEPGRAM_API_KEY":   "   ",
		"CARTESIA_API_KEY":   "sk-cartesia",
		"GROQ_API_KEY":       "gsk",
	}

	stt := builder.Build(KindSTT, creds)
	assert.Equal(t, []ID{Cartesia}, stt.IDs())
	assert.False(t, stt.Has(AssemblyAI))
	assert.False(t, stt.Has(Deepgram))

	llm := builder.Build(KindLLM, creds)
	assert.Equal(t, []ID{Groq}, llm.IDs())
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)
	creds := Credentials{"DEEPGRAM_API_KEY": "a", "ASSEMBLYAI_API_KEY": "b", "ANTHROPIC_API_KEY": "c", "OPENAI_API_KEY": "d"}

	first := builder.BuildAll(creds)
	second := builder.BuildAll(creds)

	for _, kind := range Kinds {
		r1, err := first.Registry(kind)
		require.NoError(t, err)
		r2, err := second.Registry(kind)
		require.NoError(t, err)
		assert.Equal(t, r1.IDs(), r2.IDs())
	}

	// Order follows the catalog, not the credential map
	stt, _ := first.Registry(KindSTT)
	assert.Equal(t, []ID{AssemblyAI, Deepgram}, stt.IDs())
	llm, _ := first.Registry(KindLLM)
	assert.Equal(t, []ID{OpenAI, Anthropic}, llm.IDs())
}

func TestBuilder_Build_ContainsConstructionFailure(t *testing.T) {
	catalog := DefaultCatalog()
	factory := newTestFactory(catalog)
	factory.Register(KindLLM, Gemini, func(params Params) (Service, error) {
		return nil, errors.New("malformed key")
	})
	factory.Register(KindSTT, Deepgram, func(params Params) (Service, error) {
		panic("boom")
	})

	core, logs := observer.New(zapcore.WarnLevel)
	builder := NewBuilder(catalog, factory, zap.New(core), nil)

	set := builder.BuildAll(Credentials{
		"GOOGLE_API_KEY":   "AIza-bad",
		"CEREBRAS_API_KEY": "csk",
		"DEEPGRAM_API_KEY": "dg",
		"CARTESIA_API_KEY": "sk",
	})

	llm, err := set.Registry(KindLLM)
	require.NoError(t, err)
	assert.Equal(t, []ID{Cerebras}, llm.IDs())

	stt, err := set.Registry(KindSTT)
	require.NoError(t, err)
	assert.Equal(t, []ID{Cartesia}, stt.IDs())

	warnings := logs.All()
	require.Len(t, warnings, 2)

	assert.Equal(t, "failed_to_create_stt_service", warnings[0].Message)
	assert.Equal(t, "deepgram", warnings[0].ContextMap()["provider"])
	assert.Contains(t, warnings[0].ContextMap()["error"], "constructor panicked")

	assert.Equal(t, "failed_to_create_llm_service", warnings[1].Message)
	assert.Equal(t, "gemini", warnings[1].ContextMap()["provider"])
	assert.Contains(t, warnings[1].ContextMap()["error"], "malformed key")
}

func TestBuilder_Build_MissingConstructorIsSkipped(t *testing.T) {
	catalog := DefaultCatalog()
	factory := NewProviderFactory(catalog)
	factory.Register(KindLLM, Groq, fakeCreator)

	builder := NewBuilder(catalog, factory, zap.NewNop(), nil)
	llm := builder.Build(KindLLM, Credentials{"OPENAI_API_KEY": "sk", "GROQ_API_KEY": "gsk"})

	assert.Equal(t, []ID{Groq}, llm.IDs())
}

func TestBuilder_Metrics(t *testing.T) {
	catalog := DefaultCatalog()
	factory := newTestFactory(catalog)
	factory.Register(KindSTT, AssemblyAI, func(params Params) (Service, error) {
		return nil, errors.New("nope")
	})

	reg := prometheus.NewRegistry()
	metrics, err := NewBuildMetrics(reg)
	require.NoError(t, err)

	builder := NewBuilder(catalog, factory, nil, metrics)
	builder.Build(KindSTT, Credentials{"ASSEMBLYAI_API_KEY": "a", "CARTESIA_API_KEY": "c"})

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.builds.WithLabelValues("stt", "cartesia", outcomeCreated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.builds.WithLabelValues("stt", "assemblyai", outcomeFailed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.builds.WithLabelValues("stt", "deepgram", outcomeUnavailable)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.available.WithLabelValues("stt")))

	// Registering twice on the same registry is rejected
	_, err = NewBuildMetrics(reg)
	assert.Error(t, err)
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var reg *Registry

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.IDs())
	assert.NotNil(t, reg.IDs())
	_, ok := reg.Get(OpenAI)
	assert.False(t, ok)
}

func TestRegistry_IDsIsACopy(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)
	reg := builder.Build(KindLLM, Credentials{"OPENAI_API_KEY": "sk", "GROQ_API_KEY": "gsk"})

	ids := reg.IDs()
	ids[0] = "tampered"

	assert.Equal(t, []ID{OpenAI, Groq}, reg.IDs())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)
	set := builder.BuildAll(allCredentials(catalog))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, kind := range Kinds {
				reg, err := set.Registry(kind)
				assert.NoError(t, err)
				for _, id := range reg.IDs() {
					service, ok := reg.Get(id)
					assert.True(t, ok)
					assert.Equal(t, id, service.ID())
				}
			}
		}()
	}
	wg.Wait()
}

func TestSet_Uninitialized(t *testing.T) {
	var set *Set

	_, err := set.Registry(KindSTT)
	assert.True(t, errors.Is(err, apperrors.ErrRegistryUninitialized))

	_, ok := set.Default(KindLLM, Cerebras)
	assert.False(t, ok)

	_, ok = set.STT(Cartesia)
	assert.False(t, ok)
	assert.Nil(t, set.Catalog())
}

func TestSet_UnknownKind(t *testing.T) {
	set := &Set{}
	_, err := set.Registry(Kind("tts"))
	assert.True(t, errors.Is(err, apperrors.ErrUnknownProvider))
}

func TestSet_DefaultAndTypedAccess(t *testing.T) {
	catalog := DefaultCatalog()
	builder := NewBuilder(catalog, newTestFactory(catalog), nil, nil)
	set := builder.BuildAll(Credentials{
		"DEEPGRAM_API_KEY":   "dg",
		"WHISPER_SERVER_URL": "http://127.0.0.1:8080",
		"GROQ_API_KEY":       "gsk",
	})

	id, ok := set.Default(KindSTT, Whisper)
	assert.True(t, ok)
	assert.Equal(t, Whisper, id)

	// Preferred provider unavailable falls back to the first registered
	id, ok = set.Default(KindSTT, Cartesia)
	assert.True(t, ok)
	assert.Equal(t, Deepgram, id)

	id, ok = set.Default(KindLLM, Cerebras)
	assert.True(t, ok)
	assert.Equal(t, Groq, id)

	stt, ok := set.STT(Deepgram)
	require.True(t, ok)
	text, err := stt.Transcribe(context.Background(), []byte("pcm"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "transcript", text)

	llm, ok := set.LLM(Groq)
	require.True(t, ok)
	reply, err := llm.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "reply", reply)

	_, ok = set.LLM(OpenAI)
	assert.False(t, ok)
	assert.Same(t, catalog, set.Catalog())
}
