package domain

import (
	"path/filepath"
	"strconv"
)

// ConfigFileName is the file name used for both repository-local and
// global configuration.
const ConfigFileName = "pawsdoc.toml"

// StateDirName is the directory pawsdoc keeps its logs and other local
// state in, relative to the working directory.
const StateDirName = ".pawsdoc"

// Config represents the application configuration.
type Config struct {
	Apidoc   ApidocConfig // [apidoc] settings
	Log      LogConfig    // [log] settings
	Report   ReportConfig // [report] settings
	Warnings []string     // Unknown-key warnings collected while loading
}

// ApidocConfig holds sphinx-apidoc settings from the [apidoc] section.
// Fields are ordered to minimize memory padding.
type ApidocConfig struct {
	Binary     string   // Binary name or path
	OutputDir  string   // Destination for generated stubs
	PackageDir string   // Package to document
	Title      string   // -H project title
	Author     string   // -A authorship string
	Excludes   []string // Exclude patterns appended to every run
	Depth      int      // Maximum TOC depth
	Force      bool     // Overwrite existing stubs
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// ReportConfig holds report settings from the [report] section.
type ReportConfig struct {
	Path string // Where to write the YAML generation report ("" = disabled)
}

// NewDefaultConfig returns the configuration matching the historical
// generation script.
func NewDefaultConfig() *Config {
	return &Config{
		Apidoc: ApidocConfig{
			Binary:     DefaultBinary,
			Force:      true,
			Depth:      DefaultDepth,
			OutputDir:  DefaultOutputDir,
			PackageDir: DefaultPackageDir,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Invocation builds the default invocation described by this config.
func (c *Config) Invocation() Invocation {
	return Invocation{
		Binary:     c.Apidoc.Binary,
		Force:      c.Apidoc.Force,
		Depth:      c.Apidoc.Depth,
		OutputDir:  c.Apidoc.OutputDir,
		PackageDir: c.Apidoc.PackageDir,
		Title:      c.Apidoc.Title,
		Author:     c.Apidoc.Author,
		Excludes:   append([]string(nil), c.Apidoc.Excludes...),
	}
}

// StateDir returns the local state directory for the given working
// directory.
func StateDir(workDir string) string {
	return filepath.Join(workDir, StateDirName)
}

// GlobalConfigDir returns the global config directory under the given
// XDG config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "pawsdoc")
}

// GlobalLogPath returns the path of the shared log file.
func GlobalLogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", "pawsdoc.log")
}

// TargetLogPath returns the path of a per-target log file.
func TargetLogPath(stateDir, target string) string {
	return filepath.Join(stateDir, "logs", "target-"+target+".log")
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string // Absolute path of the config file
	Content string // Raw file content (empty if the file does not exist)
	Exists  bool
}

// RenderConfigTemplate renders a commented configuration file template
// seeded with the given config's values.
func RenderConfigTemplate(cfg *Config) string {
	inv := cfg.Invocation()
	return `# pawsdoc configuration
#
# Values here override the built-in defaults; the repository config in
# turn overrides the global one. All keys are optional.

[apidoc]
# Binary to invoke. Must be on PATH or an absolute path.
binary = "` + inv.Binary + `"
# Overwrite existing stub files (-f).
force = ` + boolStr(inv.Force) + `
# Maximum TOC depth (-d).
depth = ` + strconv.Itoa(inv.Depth) + `
# Destination directory for generated stubs (-o).
output_dir = "` + inv.OutputDir + `"
# Package directory to document.
package_dir = "` + inv.PackageDir + `"
# Project title (-H) and authorship string (-A). When left empty they
# are derived from the package's git repository if one is present.
#title = ""
#author = ""
# Path patterns excluded from generation.
#excludes = []

[log]
# Log level: debug, info, warn, error
level = "` + cfg.Log.Level + `"

[report]
# Write a YAML generation report after successful runs.
#path = "packagedoc-report.yaml"
`
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
