package metadata

import "strings"

// FormDefinition is the authored, minimal form of FormMetadata.
// Empty strings, nil slices and nil flags are filled in by Derive.
type FormDefinition struct {
	ID               string            `yaml:"id"`
	Name             string            `yaml:"name,omitempty"`
	APIEndpoint      string            `yaml:"apiEndpoint,omitempty"`
	Fields           []FieldDefinition `yaml:"fields"`
	SearchFields     []string          `yaml:"searchFields,omitempty"`
	DisplayField     string            `yaml:"displayField,omitempty"`
	CreateButtonText string            `yaml:"createButtonText,omitempty"`
	Page             string            `yaml:"page,omitempty"`
	AllowCreate      *bool             `yaml:"allowCreate,omitempty"`
	ShowSearch       *bool             `yaml:"showSearch,omitempty"`
	Breadcrumbs      []Breadcrumb      `yaml:"breadcrumbs,omitempty"`
}

// FieldDefinition is the authored form of FormFieldConfig.
type FieldDefinition struct {
	Name       string    `yaml:"name"`
	Label      string    `yaml:"label,omitempty"`
	Type       FieldType `yaml:"type"`
	Required   bool      `yaml:"required,omitempty"`
	Searchable bool      `yaml:"searchable,omitempty"`
	Validation string    `yaml:"validation,omitempty"`
}

const (
	rootCrumbLabel = "Dashboard"
	rootCrumbPath  = "/"
)

// Derive expands a definition into full metadata for the given module.
// Explicit values always win; invalid explicit values are left for Validate to reject.
func Derive(mod Module, def FormDefinition) FormMetadata {
	m := FormMetadata{
		ID:               def.ID,
		Name:             def.Name,
		APIEndpoint:      def.APIEndpoint,
		DisplayField:     def.DisplayField,
		CreateButtonText: def.CreateButtonText,
		Module:           mod.ID,
		Page:             def.Page,
	}
	if m.Name == "" {
		m.Name = Humanize(def.ID)
	}
	if m.APIEndpoint == "" {
		m.APIEndpoint = "/api/" + strings.ToLower(def.ID)
	}
	if m.Page == "" {
		m.Page = "/" + mod.ID + "/" + Kebab(def.ID)
	}
	if m.CreateButtonText == "" {
		m.CreateButtonText = "Create " + m.Name
	}

	m.Fields = make([]FormFieldConfig, 0, len(def.Fields))
	for _, f := range def.Fields {
		label := f.Label
		if label == "" {
			label = Humanize(f.Name)
		}
		m.Fields = append(m.Fields, FormFieldConfig{
			Name:       f.Name,
			Label:      label,
			Type:       f.Type,
			Required:   f.Required,
			Searchable: f.Searchable,
			Validation: f.Validation,
		})
	}

	if m.DisplayField == "" && len(m.Fields) > 0 {
		m.DisplayField = m.Fields[0].Name
		if m.HasField("name") {
			m.DisplayField = "name"
		}
	}

	if def.SearchFields != nil {
		m.SearchFields = append([]string{}, def.SearchFields...)
	} else {
		m.SearchFields = []string{}
		for _, f := range m.Fields {
			if f.Searchable {
				m.SearchFields = append(m.SearchFields, f.Name)
			}
		}
	}

	m.AllowCreate = true
	if def.AllowCreate != nil {
		m.AllowCreate = *def.AllowCreate
	}
	m.ShowSearch = len(m.SearchFields) > 0
	if def.ShowSearch != nil {
		m.ShowSearch = *def.ShowSearch
	}

	if def.Breadcrumbs != nil {
		m.Breadcrumbs = append([]Breadcrumb{}, def.Breadcrumbs...)
	} else {
		label := mod.Label
		if label == "" {
			label = Humanize(mod.ID)
		}
		m.Breadcrumbs = []Breadcrumb{
			{Label: rootCrumbLabel, Path: rootCrumbPath},
			{Label: label, Path: "/" + mod.ID},
			{Label: m.Name, Path: m.Page},
		}
	}

	return m
}

// Kebab turns "purchaseOrder" into "purchase-order".
func Kebab(id string) string {
	return strings.ToLower(strings.ReplaceAll(Humanize(id), " ", "-"))
}
