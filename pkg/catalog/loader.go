// Package catalog loads named parameter definitions from YAML or JSON
// documents so callers can keep descriptor metadata next to their forms
// instead of constructing definitions in code.
package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramwidget/pkg/param"
)

type document struct {
	Parameters []entry `json:"parameters" yaml:"parameters"`
}

type entry struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	List        bool     `json:"list" yaml:"list"`
	Delimiter   string   `json:"delimiter" yaml:"delimiter"`
	Allowed     []string `json:"allowed" yaml:"allowed"`
	Default     any      `json:"default" yaml:"default"`
	Description string   `json:"description" yaml:"description"`
}

// Store holds loaded definitions keyed by parameter name.
type Store struct {
	definitions map[string]param.Definition
	order       []string
}

// LoadFS walks the provided filesystem and parses JSON/YAML definition
// files. When fsys is nil or no definition files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]param.Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, dirEntry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if dirEntry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, item := range doc.Parameters {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				return fmt.Errorf("catalog: file %s defines a parameter with no name", path)
			}
			if _, exists := store.definitions[name]; exists {
				return fmt.Errorf("catalog: duplicate parameter %q (file %s)", name, path)
			}
			store.definitions[name] = item.definition()
			store.order = append(store.order, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func (e entry) definition() param.Definition {
	var options []param.DefinitionOption
	if e.List {
		options = append(options, param.AsList(e.Delimiter))
	}
	if len(e.Allowed) > 0 {
		options = append(options, param.WithAllowedValues(e.Allowed...))
	}
	if e.Default != nil {
		options = append(options, param.WithDefault(param.CoerceValue(e.Default)))
	}
	if e.Description != "" {
		options = append(options, param.WithDescription(e.Description))
	}
	return param.NewDefinition(e.Name, param.ParseType(e.Type), options...)
}

// Get retrieves a definition by parameter name.
func (s *Store) Get(name string) (param.Definition, bool) {
	if s == nil {
		return param.Definition{}, false
	}
	def, ok := s.definitions[name]
	return def, ok
}

// Names lists the loaded parameter names in document order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len reports the number of loaded definitions.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.definitions)
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return doc, nil
}
