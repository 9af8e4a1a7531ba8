package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogFile is one authored catalog document: a navigation module and its forms.
type CatalogFile struct {
	Module string           `yaml:"module"`
	Label  string           `yaml:"label,omitempty"`
	Forms  []FormDefinition `yaml:"forms"`
}

// Parse decodes a catalog document. Unknown keys are rejected so that a typo
// in an authored file fails instead of silently dropping a setting.
func Parse(data []byte) (CatalogFile, error) {
	var file CatalogFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return CatalogFile{}, errors.New("parse yaml: empty document")
		}
		return CatalogFile{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return CatalogFile{}, errors.New("parse yaml: one document per file expected")
	}

	if file.Module == "" {
		return CatalogFile{}, errors.New("module is required")
	}
	return file, nil
}

// ParseFS reads every *.yaml / *.yml file under dir (recursively, lexical order)
// and expands the forms with Derive. Files declaring the same module are merged;
// forms are derived only after all files are read, so every form of a module
// sees the same label. Duplicate form ids are kept so NewRegistry can report
// them with their sources.
func ParseFS(fsys fs.FS, dir string) (Catalog, error) {
	type parsedFile struct {
		path string
		file CatalogFile
	}

	cat := Catalog{Sources: make(map[string][]string)}
	var files []parsedFile

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read file %s: %w", p, err)
		}
		file, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}

		cat.addModule(file.Module, file.Label)
		files = append(files, parsedFile{path: p, file: file})
		return nil
	})
	if err != nil {
		return Catalog{}, err
	}

	for _, pf := range files {
		mod := cat.derivationModule(pf.file.Module)
		for _, def := range pf.file.Forms {
			cat.Forms = append(cat.Forms, Derive(mod, def))
			cat.Sources[def.ID] = append(cat.Sources[def.ID], pf.path)
		}
	}
	return cat, nil
}

// addModule declares id once; the first non-empty label wins.
func (c *Catalog) addModule(id, label string) {
	label = strings.TrimSpace(label)
	for i := range c.Modules {
		if c.Modules[i].ID == id {
			if c.Modules[i].Label == "" {
				c.Modules[i].Label = label
			}
			return
		}
	}
	c.Modules = append(c.Modules, Module{ID: id, Label: label})
}

// derivationModule returns the module as Derive should see it, label filled in.
func (c *Catalog) derivationModule(id string) Module {
	mod := Module{ID: id}
	for _, m := range c.Modules {
		if m.ID == id {
			mod.Label = m.Label
			break
		}
	}
	if mod.Label == "" {
		mod.Label = Humanize(id)
	}
	return mod
}
