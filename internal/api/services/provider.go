package services

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"tambourine/internal/api/dto"
	apierrors "tambourine/internal/api/errors"
	"tambourine/internal/app/api/provider"
	apperrors "tambourine/internal/app/errors"
)

// ProviderServiceImpl implements ProviderService over the built provider set
type ProviderServiceImpl struct {
	set    *provider.Set
	logger *zap.Logger
}

// NewProviderService creates a new provider service. set may be nil before
// the registries are built.
func NewProviderService(set *provider.Set, logger *zap.Logger) ProviderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProviderServiceImpl{
		set:    set,
		logger: logger,
	}
}

// ListAvailable lists the constructed providers of every kind in registry
// order. An uninitialized set yields empty lists.
func (s *ProviderServiceImpl) ListAvailable(ctx context.Context) (*dto.AvailableProvidersResponse, error) {
	resp := dto.NewAvailableProvidersResponse()

	for _, kind := range provider.Kinds {
		reg, err := s.set.Registry(kind)
		if errors.Is(err, apperrors.ErrRegistryUninitialized) {
			s.logger.Debug("provider_registry_uninitialized")
			return dto.NewAvailableProvidersResponse(), nil
		}
		if err != nil {
			return nil, apierrors.From(err, apierrors.KindInternal, "failed to read provider registry")
		}

		resp.Set(kind, s.describe(kind, reg))
	}

	return resp, nil
}

// describe converts a registry to DTOs, labeling from the catalog and
// falling back to the raw ID when an entry has no descriptor
func (s *ProviderServiceImpl) describe(kind provider.Kind, reg *provider.Registry) []dto.ProviderInfo {
	catalog := s.set.Catalog()

	return lo.FilterMap(reg.IDs(), func(id provider.ID, _ int) (dto.ProviderInfo, bool) {
		service, ok := reg.Get(id)
		if !ok {
			return dto.ProviderInfo{}, false
		}

		desc := provider.Descriptor{Kind: kind, ID: id}
		if catalog != nil {
			if found, ok := catalog.Descriptor(kind, id); ok {
				desc = found
			}
		}
		return dto.ToProviderInfo(desc, service), true
	})
}
