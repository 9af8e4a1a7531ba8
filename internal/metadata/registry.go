package metadata

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Registry stores form definitions keyed by entity id.
// It is immutable after NewRegistry returns; all readers share it without locks.
type Registry struct {
	forms   map[string]FormMetadata
	ids     []string // sorted
	modules map[string]Module
	order   []string // module ids, sorted
}

// NewRegistry validates every form and builds the registry.
// Duplicate ids and invariant violations are all collected and returned together,
// wrapped with ErrInvalidCatalog. No registry is returned on error.
func NewRegistry(cat Catalog) (*Registry, error) {
	r := &Registry{
		forms:   make(map[string]FormMetadata, len(cat.Forms)),
		modules: make(map[string]Module, len(cat.Modules)),
	}

	var errs []error
	reported := make(map[string]bool)
	for _, def := range cat.Forms {
		if err := Validate(def); err != nil {
			errs = append(errs, err)
		}
		if _, exists := r.forms[def.ID]; exists {
			if !reported[def.ID] {
				errs = append(errs, &DuplicateError{ID: def.ID, Sources: cat.Sources[def.ID]})
				reported[def.ID] = true
			}
			continue
		}
		r.forms[def.ID] = def.Clone()
	}

	for _, mod := range cat.Modules {
		if mod.ID == "" {
			errs = append(errs, errors.New("module id is required"))
			continue
		}
		if _, exists := r.modules[mod.ID]; exists {
			errs = append(errs, fmt.Errorf("module %q declared more than once", mod.ID))
			continue
		}
		if mod.Label == "" {
			mod.Label = Humanize(mod.ID)
		}
		mod.Forms = nil
		r.modules[mod.ID] = mod
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}

	// Forms are attached to modules in catalog order so menus keep the authored order.
	for _, def := range cat.Forms {
		mod, ok := r.modules[def.Module]
		if !ok {
			mod = Module{ID: def.Module, Label: Humanize(def.Module)}
		}
		mod.Forms = append(mod.Forms, def.ID)
		r.modules[def.Module] = mod
	}

	r.ids = make([]string, 0, len(r.forms))
	for id := range r.forms {
		r.ids = append(r.ids, id)
	}
	sort.Strings(r.ids)

	r.order = make([]string, 0, len(r.modules))
	for id := range r.modules {
		r.order = append(r.order, id)
	}
	sort.Strings(r.order)

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(cat Catalog) *Registry {
	r, err := NewRegistry(cat)
	if err != nil {
		panic(err)
	}
	return r
}

// GetFormMetadata resolves an entity id. Lookup is exact: no trimming or case folding.
// The second result is false when the id is unknown.
func (r *Registry) GetFormMetadata(id string) (FormMetadata, bool) {
	def, ok := r.forms[id]
	if !ok {
		return FormMetadata{}, false
	}
	return def.Clone(), true
}

// Get is an alias of GetFormMetadata.
func (r *Registry) Get(id string) (FormMetadata, bool) {
	return r.GetFormMetadata(id)
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.forms[id]
	return ok
}

// Len returns the number of registered forms.
func (r *Registry) Len() int {
	return len(r.forms)
}

// IDs returns all form ids in sorted order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// List returns all forms sorted by id.
func (r *Registry) List() []FormMetadata {
	list := make([]FormMetadata, 0, len(r.ids))
	for _, id := range r.ids {
		list = append(list, r.forms[id].Clone())
	}
	return list
}

// ListByModule returns the forms of one module in declaration order.
func (r *Registry) ListByModule(module string) []FormMetadata {
	mod, ok := r.modules[module]
	if !ok {
		return []FormMetadata{}
	}
	list := make([]FormMetadata, 0, len(mod.Forms))
	for _, id := range mod.Forms {
		list = append(list, r.forms[id].Clone())
	}
	return list
}

// Modules returns the navigation groups sorted by id.
// Modules without forms are included so empty menu sections stay visible.
func (r *Registry) Modules() []Module {
	list := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.modules[id].clone())
	}
	return list
}

// Module returns a single navigation group.
func (r *Registry) Module(id string) (Module, bool) {
	mod, ok := r.modules[id]
	if !ok {
		return Module{}, false
	}
	return mod.clone(), true
}

// Humanize turns an identifier such as "purchaseOrder" or "purchase_order"
// into a caption: "Purchase Order".
func Humanize(id string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(id)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()

	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
