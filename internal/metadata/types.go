// Package metadata holds the form metadata registry: a read-only map from entity id
// to the description of its generic CRUD screen (endpoint, fields, search, breadcrumbs).
package metadata

// FieldType defines which input control a renderer uses for a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

// FieldTypes lists the closed set of supported field types.
var FieldTypes = []FieldType{FieldText, FieldEmail, FieldNumber, FieldDate, FieldSelect, FieldTextarea}

// Valid reports whether t belongs to the closed set.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldNumber, FieldDate, FieldSelect, FieldTextarea:
		return true
	}
	return false
}

// FormFieldConfig describes one attribute of an entity form.
type FormFieldConfig struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Type       FieldType `json:"type"`
	Required   bool      `json:"required"`
	Searchable bool      `json:"searchable"`
	Validation string    `json:"validation,omitempty"` // opaque, evaluated by the form engine
}

// Breadcrumb is one step of the navigation trail.
type Breadcrumb struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// FormMetadata describes the CRUD screen of one business entity.
type FormMetadata struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	APIEndpoint      string            `json:"apiEndpoint"`
	Fields           []FormFieldConfig `json:"fields"`
	SearchFields     []string          `json:"searchFields"`
	DisplayField     string            `json:"displayField"`
	CreateButtonText string            `json:"createButtonText"`
	Module           string            `json:"module"`
	Page             string            `json:"page"`
	AllowCreate      bool              `json:"allowCreate"`
	ShowSearch       bool              `json:"showSearch"`
	Breadcrumbs      []Breadcrumb      `json:"breadcrumbs"`
}

// Field returns the field with the given name.
func (m FormMetadata) Field(name string) (FormFieldConfig, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FormFieldConfig{}, false
}

// HasField reports whether a field with the given name exists.
func (m FormMetadata) HasField(name string) bool {
	_, ok := m.Field(name)
	return ok
}

// Clone returns a deep copy. Registry hands out clones so callers cannot
// reach into shared slices.
func (m FormMetadata) Clone() FormMetadata {
	c := m
	if m.Fields != nil {
		c.Fields = make([]FormFieldConfig, len(m.Fields))
		copy(c.Fields, m.Fields)
	}
	if m.SearchFields != nil {
		c.SearchFields = make([]string, len(m.SearchFields))
		copy(c.SearchFields, m.SearchFields)
	}
	if m.Breadcrumbs != nil {
		c.Breadcrumbs = make([]Breadcrumb, len(m.Breadcrumbs))
		copy(c.Breadcrumbs, m.Breadcrumbs)
	}
	return c
}

// Module groups forms for the navigation menu.
type Module struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Forms []string `json:"forms"`
}

func (m Module) clone() Module {
	c := m
	c.Forms = append([]string(nil), m.Forms...)
	return c
}

// Catalog is the input a Registry is built from.
type Catalog struct {
	Modules []Module
	Forms   []FormMetadata

	// Sources maps a form id to the files that declared it.
	// Filled by ParseFS and AddRecordForms; used only to improve duplicate reports.
	Sources map[string][]string
}
