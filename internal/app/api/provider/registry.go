package provider

import (
	"fmt"

	"go.uber.org/zap"
	apperrors "tambourine/internal/app/errors"
)

// Registry maps provider IDs of one kind to live services. It is built once by
// a Builder and has no mutation methods; concurrent readers need no locking.
// A nil *Registry is valid and empty.
type Registry struct {
	kind     Kind
	order    []ID
	services map[ID]Service
}

// Kind returns the provider kind this registry holds
func (r *Registry) Kind() Kind {
	if r == nil {
		return ""
	}
	return r.kind
}

// IDs returns the registered IDs in construction order
func (r *Registry) IDs() []ID {
	if r == nil {
		return []ID{}
	}
	return append([]ID{}, r.order...)
}

// Get returns the service registered for id
func (r *Registry) Get(id ID) (Service, bool) {
	if r == nil {
		return nil, false
	}
	service, ok := r.services[id]
	return service, ok
}

// Has reports whether id is registered
func (r *Registry) Has(id ID) bool {
	_, ok := r.Get(id)
	return ok
}

// Len returns the number of registered services
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Set holds the STT and LLM registries of the process. A nil *Set means the
// builder has not run.
type Set struct {
	catalog *Catalog
	stt     *Registry
	llm     *Registry
}

// Catalog returns the catalog the set was built from
func (s *Set) Catalog() *Catalog {
	if s == nil {
		return nil
	}
	return s.catalog
}

// Registry returns the registry of kind, or ErrRegistryUninitialized on a nil set
func (s *Set) Registry(kind Kind) (*Registry, error) {
	if s == nil {
		return nil, apperrors.ErrRegistryUninitialized
	}
	switch kind {
	case KindSTT:
		return s.stt, nil
	case KindLLM:
		return s.llm, nil
	default:
		return nil, apperrors.Kindf(apperrors.ErrUnknownProvider, "unknown provider kind %q", kind)
	}
}

// STT returns the speech-to-text services by ID
func (s *Set) STT(id ID) (STTService, bool) {
	reg, err := s.Registry(KindSTT)
	if err != nil {
		return nil, false
	}
	service, ok := reg.Get(id)
	if !ok {
		return nil, false
	}
	stt, ok := service.(STTService)
	return stt, ok
}

// LLM returns the language-model services by ID
func (s *Set) LLM(id ID) (LLMService, bool) {
	reg, err := s.Registry(KindLLM)
	if err != nil {
		return nil, false
	}
	service, ok := reg.Get(id)
	if !ok {
		return nil, false
	}
	llm, ok := service.(LLMService)
	return llm, ok
}

// Default resolves the provider to use for kind: preferred when available,
// otherwise the first registered one. ok is false when nothing is registered.
func (s *Set) Default(kind Kind, preferred ID) (id ID, ok bool) {
	reg, err := s.Registry(kind)
	if err != nil || reg.Len() == 0 {
		return "", false
	}
	if reg.Has(preferred) {
		return preferred, true
	}
	return reg.order[0], true
}

// Builder assembles registries from a catalog, a factory and credentials
type Builder struct {
	catalog *Catalog
	factory Factory
	logger  *zap.Logger
	metrics *BuildMetrics
}

// NewBuilder creates a registry builder. metrics may be nil.
func NewBuilder(catalog *Catalog, factory Factory, logger *zap.Logger, metrics *BuildMetrics) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		catalog: catalog,
		factory: factory,
		logger:  logger,
		metrics: metrics,
	}
}

// Build constructs every available provider of kind. Providers without a
// credential are skipped silently; providers whose construction fails are
// logged and skipped. Build always returns a registry, possibly empty.
func (b *Builder) Build(kind Kind, creds Credentials) *Registry {
	reg := &Registry{
		kind:     kind,
		order:    []ID{},
		services: make(map[ID]Service),
	}

	for _, desc := range b.catalog.Descriptors(kind) {
		if !creds.Has(desc.Credential) {
			b.metrics.observe(kind, desc.ID, outcomeUnavailable)
			continue
		}

		b.logger.Info(fmt.Sprintf("creating_%s_service", kind), zap.String("provider", string(desc.ID)))

		service, err := b.construct(kind, desc.ID, creds)
		if err != nil {
			b.logger.Warn(fmt.Sprintf("failed_to_create_%s_service", kind),
				zap.String("provider", string(desc.ID)),
				zap.Error(err),
			)
			b.metrics.observe(kind, desc.ID, outcomeFailed)
			continue
		}

		reg.order = append(reg.order, desc.ID)
		reg.services[desc.ID] = service
		b.metrics.observe(kind, desc.ID, outcomeCreated)
	}

	b.metrics.setAvailable(kind, reg.Len())
	return reg
}

// BuildAll builds both registries from one credential snapshot
func (b *Builder) BuildAll(creds Credentials) *Set {
	return &Set{
		catalog: b.catalog,
		stt:     b.Build(KindSTT, creds),
		llm:     b.Build(KindLLM, creds),
	}
}

// construct calls the factory, turning a panicking constructor into an error
// so a single provider cannot take startup down.
func (b *Builder) construct(kind Kind, id ID, creds Credentials) (service Service, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			service = nil
			err = apperrors.Kindf(apperrors.ErrConstructionFailure, "%s: constructor panicked: %v", id, recovered)
		}
	}()
	return b.factory.Construct(kind, id, creds)
}
