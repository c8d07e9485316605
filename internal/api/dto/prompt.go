package dto

import "tambourine/internal/app/prompt"

// DefaultSectionsResponse carries the built-in prompt sections
type DefaultSectionsResponse struct {
	Main       string `json:"main"`
	Advanced   string `json:"advanced"`
	Dictionary string `json:"dictionary"`
}

// ToDefaultSectionsResponse converts prompt sections to the response DTO
func ToDefaultSectionsResponse(sections prompt.Sections) *DefaultSectionsResponse {
	return &DefaultSectionsResponse{
		Main:       sections.Main,
		Advanced:   sections.Advanced,
		Dictionary: sections.Dictionary,
	}
}
