package dto

import "tambourine/internal/app/api/provider"

// ProviderInfo describes one available provider
type ProviderInfo struct {
	Value   string `json:"value" yaml:"value"`
	Label   string `json:"label" yaml:"label"`
	IsLocal bool   `json:"is_local" yaml:"is_local"`
	Model   string `json:"model,omitempty" yaml:"model,omitempty"`
}

// AvailableProvidersResponse lists the available providers per kind, in
// registry order. Both lists are always present.
type AvailableProvidersResponse struct {
	STT []ProviderInfo `json:"stt" yaml:"stt"`
	LLM []ProviderInfo `json:"llm" yaml:"llm"`
}

// NewAvailableProvidersResponse returns a response with empty, non-nil lists
func NewAvailableProvidersResponse() *AvailableProvidersResponse {
	return &AvailableProvidersResponse{
		STT: []ProviderInfo{},
		LLM: []ProviderInfo{},
	}
}

// Set stores infos under kind
func (r *AvailableProvidersResponse) Set(kind provider.Kind, infos []ProviderInfo) {
	if infos == nil {
		infos = []ProviderInfo{}
	}
	switch kind {
	case provider.KindSTT:
		r.STT = infos
	case provider.KindLLM:
		r.LLM = infos
	}
}

// ToProviderInfo converts a catalog entry and its service to the response DTO
func ToProviderInfo(desc provider.Descriptor, service provider.Service) ProviderInfo {
	info := ProviderInfo{
		Value:   string(desc.ID),
		Label:   desc.Label,
		IsLocal: desc.IsLocal,
	}
	if info.Label == "" {
		info.Label = info.Value
	}
	if service != nil {
		info.Model = service.ModelName()
	}
	return info
}
