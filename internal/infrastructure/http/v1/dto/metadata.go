package dto

import "metaforms/internal/metadata"

// FormSummary is the short form of a FormMetadata used in listings and menus.
type FormSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Module      string `json:"module"`
	Page        string `json:"page"`
	APIEndpoint string `json:"apiEndpoint"`
	AllowCreate bool   `json:"allowCreate"`
}

// FromFormMetadata builds a summary.
func FromFormMetadata(m metadata.FormMetadata) FormSummary {
	return FormSummary{
		ID:          m.ID,
		Name:        m.Name,
		Module:      m.Module,
		Page:        m.Page,
		APIEndpoint: m.APIEndpoint,
		AllowCreate: m.AllowCreate,
	}
}

// FromFormMetadataList builds summaries preserving order.
func FromFormMetadataList(list []metadata.FormMetadata) []FormSummary {
	out := make([]FormSummary, 0, len(list))
	for _, m := range list {
		out = append(out, FromFormMetadata(m))
	}
	return out
}

// ModuleResponse is a navigation group with its forms.
type ModuleResponse struct {
	ID    string        `json:"id"`
	Label string        `json:"label"`
	Path  string        `json:"path"`
	Forms []FormSummary `json:"forms"`
}

// FromModule builds a module response; forms are summarized in menu order.
func FromModule(mod metadata.Module, forms []metadata.FormMetadata) ModuleResponse {
	return ModuleResponse{
		ID:    mod.ID,
		Label: mod.Label,
		Path:  "/" + mod.ID,
		Forms: FromFormMetadataList(forms),
	}
}
