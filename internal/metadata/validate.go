package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog wraps every error returned by NewRegistry.
var ErrInvalidCatalog = errors.New("invalid form catalog")

// ValidationError lists the problems found in a single form definition.
type ValidationError struct {
	FormID   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form %q: %s", e.FormID, strings.Join(e.Problems, "; "))
}

// DuplicateError reports a form id declared more than once.
type DuplicateError struct {
	ID      string
	Sources []string
}

func (e *DuplicateError) Error() string {
	if len(e.Sources) > 0 {
		return fmt.Sprintf("form %q defined more than once (%s)", e.ID, strings.Join(e.Sources, ", "))
	}
	return fmt.Sprintf("form %q defined more than once", e.ID)
}

// Validate checks the structural and cross-field invariants of one form.
// It returns nil or a *ValidationError carrying every problem found.
func Validate(m FormMetadata) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if m.ID == "" {
		add("id is required")
	}
	if m.Name == "" {
		add("name is required")
	}
	if m.Module == "" {
		add("module is required")
	}
	if !strings.HasPrefix(m.APIEndpoint, "/") {
		add("apiEndpoint %q must start with /", m.APIEndpoint)
	}
	if !strings.HasPrefix(m.Page, "/") {
		add("page %q must start with /", m.Page)
	}
	if m.CreateButtonText == "" && m.AllowCreate {
		add("createButtonText is required when allowCreate is set")
	}

	if len(m.Fields) == 0 {
		add("at least one field is required")
	}
	seen := make(map[string]struct{}, len(m.Fields))
	for i, f := range m.Fields {
		if f.Name == "" {
			add("fields[%d]: name is required", i)
			continue
		}
		if _, dup := seen[f.Name]; dup {
			add("field %q declared more than once", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Label == "" {
			add("field %q: label is required", f.Name)
		}
		if !f.Type.Valid() {
			add("field %q: unknown type %q", f.Name, f.Type)
		}
	}

	if _, ok := seen[m.DisplayField]; !ok {
		add("displayField %q is not a field", m.DisplayField)
	}

	searched := make(map[string]struct{}, len(m.SearchFields))
	for _, name := range m.SearchFields {
		if _, ok := seen[name]; !ok {
			add("searchFields: %q is not a field", name)
		}
		if _, dup := searched[name]; dup {
			add("searchFields: %q listed more than once", name)
		}
		searched[name] = struct{}{}
	}

	if len(m.Breadcrumbs) == 0 {
		add("at least one breadcrumb is required")
	} else if last := m.Breadcrumbs[len(m.Breadcrumbs)-1]; last.Path != m.Page {
		add("last breadcrumb path %q must equal page %q", last.Path, m.Page)
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{FormID: m.ID, Problems: problems}
}
