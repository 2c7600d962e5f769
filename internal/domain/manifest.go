package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest describes a batch of generation targets loaded from a YAML
// file (the --from flow).
type Manifest struct {
	Targets []Target `yaml:"targets"`
}

// Target is a single entry of a batch manifest. Zero-valued fields fall
// back to the effective configuration.
// Fields are ordered to minimize memory padding.
type Target struct {
	Name       string   `yaml:"name"`
	PackageDir string   `yaml:"package_dir"`
	OutputDir  string   `yaml:"output_dir,omitempty"`
	Title      string   `yaml:"title,omitempty"`
	Author     string   `yaml:"author,omitempty"`
	Excludes   []string `yaml:"excludes,omitempty"`
	Depth      int      `yaml:"depth,omitempty"`
}

// ParseManifest parses and validates a batch manifest.
//
// Format:
//
//	targets:
//	  - name: api
//	    package_dir: ../paws/api
//	    title: paws.api
//	  - name: core
//	    package_dir: ../paws/core
//	    excludes: ["../paws/core/qt"]
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Targets) == 0 {
		return nil, ErrEmptyManifest
	}

	seen := make(map[string]bool, len(m.Targets))
	for i, t := range m.Targets {
		if t.Name == "" {
			return nil, fmt.Errorf("target %d: %w", i+1, ErrTargetNoName)
		}
		if t.PackageDir == "" {
			return nil, fmt.Errorf("target %q: %w", t.Name, ErrTargetNoPackage)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("target %q: %w", t.Name, ErrDuplicateTarget)
		}
		seen[t.Name] = true
	}
	return &m, nil
}

// Invocation builds the invocation for this target on top of the given
// base (usually Config.Invocation()). Target fields override base ones
// field-wise; excludes are appended.
func (t Target) Invocation(base Invocation) Invocation {
	inv := base
	inv.PackageDir = t.PackageDir
	if t.OutputDir != "" {
		inv.OutputDir = t.OutputDir
	}
	if t.Title != "" {
		inv.Title = t.Title
	}
	if t.Author != "" {
		inv.Author = t.Author
	}
	if t.Depth > 0 {
		inv.Depth = t.Depth
	}
	inv.Excludes = append(append([]string(nil), base.Excludes...), t.Excludes...)
	return inv
}
