// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/scattering-central/pawsdoc/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the repo-local pawsdoc.toml
	globalConfDir string // Global config directory (e.g. ~/.config/pawsdoc)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration. Precedence: defaults <- global
// <- repo-local.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	localPath := filepath.Join(l.workDir, domain.ConfigFileName)
	local, err := l.loadFile(localPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		mergeInto(base, global)
	}
	if local != nil {
		mergeInto(base, local)
	}
	return base, nil
}

// LoadGlobal returns the global configuration applied onto the defaults,
// ignoring any repo-local file.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	global, err := l.loadGlobalFile()
	if err != nil {
		return nil, err
	}
	base := domain.NewDefaultConfig()
	mergeInto(base, global)
	return base, nil
}

// loadGlobalFile parses the global config file if it exists.
func (l *Loader) loadGlobalFile() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// fileConfig is the parse result of one file. Scalar fields are
// pointers so an absent key is distinguishable from a zero value.
type fileConfig struct {
	apidoc struct {
		binary     *string
		force      *bool
		depth      *int
		outputDir  *string
		packageDir *string
		title      *string
		author     *string
		excludes   []string
	}
	logLevel   *string
	reportPath *string
	warnings   []string
}

// loadFile loads and parses a configuration file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return parseRaw(raw), nil
}

// parseRaw converts the raw TOML map into a fileConfig and collects
// unknown-key warnings.
func parseRaw(raw map[string]any) *fileConfig {
	fc := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "apidoc":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "invalid section: apidoc")
				continue
			}
			for k, v := range m {
				switch k {
				case "binary":
					if s, ok := v.(string); ok {
						fc.apidoc.binary = &s
					}
				case "force":
					if b, ok := v.(bool); ok {
						fc.apidoc.force = &b
					}
				case "depth":
					if n, ok := v.(int64); ok {
						d := int(n)
						fc.apidoc.depth = &d
					}
				case "output_dir":
					if s, ok := v.(string); ok {
						fc.apidoc.outputDir = &s
					}
				case "package_dir":
					if s, ok := v.(string); ok {
						fc.apidoc.packageDir = &s
					}
				case "title":
					if s, ok := v.(string); ok {
						fc.apidoc.title = &s
					}
				case "author":
					if s, ok := v.(string); ok {
						fc.apidoc.author = &s
					}
				case "excludes":
					if list, ok := v.([]any); ok {
						for _, item := range list {
							if s, ok := item.(string); ok {
								fc.apidoc.excludes = append(fc.apidoc.excludes, s)
							}
						}
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [apidoc]: %s", k))
				}
			}
		case "log":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "invalid section: log")
				continue
			}
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						fc.logLevel = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "report":
			m, ok := value.(map[string]any)
			if !ok {
				warnings = append(warnings, "invalid section: report")
				continue
			}
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						fc.reportPath = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [report]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	fc.warnings = warnings
	return fc
}

// mergeInto applies the keys present in override onto base.
func mergeInto(base *domain.Config, override *fileConfig) {
	if override.apidoc.binary != nil {
		base.Apidoc.Binary = *override.apidoc.binary
	}
	if override.apidoc.force != nil {
		base.Apidoc.Force = *override.apidoc.force
	}
	if override.apidoc.depth != nil {
		base.Apidoc.Depth = *override.apidoc.depth
	}
	if override.apidoc.outputDir != nil {
		base.Apidoc.OutputDir = *override.apidoc.outputDir
	}
	if override.apidoc.packageDir != nil {
		base.Apidoc.PackageDir = *override.apidoc.packageDir
	}
	if override.apidoc.title != nil {
		base.Apidoc.Title = *override.apidoc.title
	}
	if override.apidoc.author != nil {
		base.Apidoc.Author = *override.apidoc.author
	}
	if len(override.apidoc.excludes) > 0 {
		base.Apidoc.Excludes = append([]string(nil), override.apidoc.excludes...)
	}
	if override.logLevel != nil {
		base.Log.Level = *override.logLevel
	}
	if override.reportPath != nil {
		base.Report.Path = *override.reportPath
	}
	base.Warnings = append(base.Warnings, override.warnings...)
}
