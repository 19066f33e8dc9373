// Package manifest loads shared asset requirement tables from YAML.
//
// Applications typically keep one manifest of the scripts and stylesheets
// many pages share, and components reference entries by name instead of
// re-declaring paths and priorities:
//
//	scripts:
//	  general:
//	    path: /static/lib/general.js
//	    priority: 40
//	  tree-widget:
//	    path: /static/lib/tree/widget.js
//	    loading: preload
//	    preload:
//	      - path: /static/lib/tree/sprite.png
//	        as: image
//	        type: image/png
//	styles:
//	  general:
//	    path: /static/lib/general.css
//
// Entries are validated on load (required paths, known loading techniques
// and resource types, priority bounds); a manifest that does not validate
// never becomes visible to callers.
package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/openbridge/htmlkit"
)

var validate = validator.New()

type resourceEntry struct {
	Path string `yaml:"path" validate:"required"`
	As   string `yaml:"as" validate:"required,oneof=fetch font image script style track"`
	Type string `yaml:"type"`
}

type scriptEntry struct {
	Path     string          `yaml:"path" validate:"required"`
	Priority *int            `yaml:"priority" validate:"omitempty,min=0,max=100"`
	Loading  string          `yaml:"loading" validate:"omitempty,oneof=normal defer async async_defer preload"`
	Preload  []resourceEntry `yaml:"preload" validate:"dive"`
}

type styleEntry struct {
	Path     string          `yaml:"path" validate:"required"`
	Priority *int            `yaml:"priority" validate:"omitempty,min=0,max=100"`
	Preload  []resourceEntry `yaml:"preload" validate:"dive"`
}

type manifestFile struct {
	Scripts map[string]scriptEntry `yaml:"scripts" validate:"dive"`
	Styles  map[string]styleEntry  `yaml:"styles" validate:"dive"`
}

var loadingTechniques = map[string]htmlkit.ScriptLoading{
	"normal":      htmlkit.LoadingNormal,
	"defer":       htmlkit.LoadingDefer,
	"async":       htmlkit.LoadingAsync,
	"async_defer": htmlkit.LoadingAsyncDefer,
	"preload":     htmlkit.LoadingPreload,
}

// Manifest is a validated, resolved set of named requirement declarations.
// It is immutable after Load; lookups are safe for concurrent use.
type Manifest struct {
	scripts map[string]*htmlkit.ScriptRequirement
	styles  map[string]*htmlkit.StyleRequirement
}

// Load parses and validates a YAML manifest.
func Load(r io.Reader) (*Manifest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var file manifestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("manifest: invalid YAML: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("manifest: validation failed: %w", err)
	}

	m := &Manifest{
		scripts: make(map[string]*htmlkit.ScriptRequirement, len(file.Scripts)),
		styles:  make(map[string]*htmlkit.StyleRequirement, len(file.Styles)),
	}

	for name, entry := range file.Scripts {
		req := htmlkit.NewScript(name, entry.Path)
		if entry.Priority != nil {
			req.WithPriority(*entry.Priority)
		}
		if entry.Loading != "" {
			req.WithLoading(loadingTechniques[entry.Loading])
		}
		resources, err := buildResources(entry.Preload)
		if err != nil {
			return nil, fmt.Errorf("manifest: script %q: %w", name, err)
		}
		req.WithPreload(resources...)
		m.scripts[name] = req
	}

	for name, entry := range file.Styles {
		req := htmlkit.NewStyle(name, entry.Path)
		if entry.Priority != nil {
			req.WithPriority(*entry.Priority)
		}
		resources, err := buildResources(entry.Preload)
		if err != nil {
			return nil, fmt.Errorf("manifest: style %q: %w", name, err)
		}
		req.WithPreload(resources...)
		m.styles[name] = req
	}

	return m, nil
}

// LoadFile loads a manifest from disk.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func buildResources(entries []resourceEntry) ([]*htmlkit.Resource, error) {
	resources := make([]*htmlkit.Resource, 0, len(entries))
	for _, entry := range entries {
		res, err := htmlkit.NewResource(entry.Path, htmlkit.ResourceType(entry.As), entry.Type)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// Script looks up a script requirement by name.
func (m *Manifest) Script(name string) (*htmlkit.ScriptRequirement, bool) {
	req, ok := m.scripts[name]
	return req, ok
}

// Scripts resolves several script names at once; an unknown name is an
// error naming the entry.
func (m *Manifest) Scripts(names ...string) ([]*htmlkit.ScriptRequirement, error) {
	reqs := make([]*htmlkit.ScriptRequirement, 0, len(names))
	for _, name := range names {
		req, ok := m.scripts[name]
		if !ok {
			return nil, fmt.Errorf("manifest: unknown script %q", name)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Style looks up a style requirement by name.
func (m *Manifest) Style(name string) (*htmlkit.StyleRequirement, bool) {
	req, ok := m.styles[name]
	return req, ok
}

// Styles resolves several style names at once; an unknown name is an error
// naming the entry.
func (m *Manifest) Styles(names ...string) ([]*htmlkit.StyleRequirement, error) {
	reqs := make([]*htmlkit.StyleRequirement, 0, len(names))
	for _, name := range names {
		req, ok := m.styles[name]
		if !ok {
			return nil, fmt.Errorf("manifest: unknown style %q", name)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
