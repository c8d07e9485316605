package provider

import (
	"fmt"

	apperrors "tambourine/internal/app/errors"
	"tambourine/internal/config"
)

type creatorKey struct {
	kind Kind
	id   ID
}

// DefaultFactory implements Factory over a catalog and a set of creators
type DefaultFactory struct {
	catalog  *Catalog
	creators map[creatorKey]Creator
}

// NewProviderFactory creates a factory for catalog with no creators registered
func NewProviderFactory(catalog *Catalog) *DefaultFactory {
	return &DefaultFactory{
		catalog:  catalog,
		creators: make(map[creatorKey]Creator),
	}
}

// Register registers a creator for a catalog entry. Registration happens while
// wiring the process, before any registry is built.
func (f *DefaultFactory) Register(kind Kind, id ID, creator Creator) {
	f.creators[creatorKey{kind: kind, id: id}] = creator
}

// Construct creates a provider instance for id using creds
func (f *DefaultFactory) Construct(kind Kind, id ID, creds Credentials) (Service, error) {
	desc, ok := f.catalog.Descriptor(kind, id)
	if !ok {
		return nil, apperrors.Kindf(apperrors.ErrUnknownProvider, "%s provider %q is not in the catalog", kind, id)
	}

	secret, ok := creds.Get(desc.Credential)
	if !ok {
		return nil, apperrors.Kindf(apperrors.ErrMissingCredential, "%s: %s is not set", id, desc.Credential)
	}

	creator, ok := f.creators[creatorKey{kind: kind, id: id}]
	if !ok {
		return nil, apperrors.Kindf(apperrors.ErrUnknownProvider, "%s provider %q has no constructor", kind, id)
	}

	pinned, _ := creds.Get(desc.ModelSetting)
	defaults := config.GetProviderDefaults(string(id))

	service, err := creator(Params{
		Kind:           kind,
		ID:             id,
		Secret:         secret,
		PinnedModel:    pinned,
		DefaultModel:   defaults.Model,
		RetryOnTimeout: defaults.RetryOnTimeout,
		RetryTimeout:   defaults.RetryTimeout,
		Timeout:        defaults.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrConstructionFailure, id, err)
	}
	if service == nil {
		return nil, apperrors.Kindf(apperrors.ErrConstructionFailure, "%s: constructor returned no service", id)
	}

	return service, nil
}

// Registered reports whether a creator exists for id of kind
func (f *DefaultFactory) Registered(kind Kind, id ID) bool {
	_, ok := f.creators[creatorKey{kind: kind, id: id}]
	return ok
}
