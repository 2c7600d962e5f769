package domain

import (
	"context"
	"io"
	"time"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// CommandRunner executes external commands.
type CommandRunner interface {
	// Run executes the command with stdout/stderr attached to the given
	// writers. The returned error carries the tool's exit status; it is
	// propagated, never interpreted.
	Run(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// Package describes a Python package or subpackage found under the
// documented source tree.
// Fields are ordered to minimize memory padding.
type Package struct {
	Name  string // Dotted import path relative to the scan root (e.g. "paws.core.operations")
	Path  string // Filesystem path of the package directory
	Depth int    // Nesting depth below the scan root (root = 0)
}

// PackageScanner discovers Python packages under a directory tree.
type PackageScanner interface {
	// Scan walks root and returns the packages found, shallowest first.
	// maxDepth bounds the nesting level (0 = root only); excludes are
	// path patterns matched against paths relative to root.
	Scan(root string, maxDepth int, excludes []string) ([]Package, error)
}

// ProjectInfo holds metadata derived from the documented package's git
// repository.
type ProjectInfo struct {
	Name   string // Repository name (from the origin remote or directory)
	Author string // Most recent commit author
	Commit string // Short hash of HEAD
}

// ProjectMetadata derives project information for title/author defaults.
type ProjectMetadata interface {
	// Describe inspects the repository containing dir. A missing
	// repository is not an error; it returns an empty ProjectInfo.
	Describe(dir string) (*ProjectInfo, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files on disk.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates a repository config file from the template.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig creates a global config file from the template.
	InitGlobalConfig(cfg *Config) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger writes structured log lines to the state directory.
type Logger interface {
	// Debug logs a debug message. target may be empty for global entries.
	Debug(target, category, msg string)

	// Info logs an info message.
	Info(target, category, msg string)

	// Warn logs a warning message.
	Warn(target, category, msg string)

	// Error logs an error message.
	Error(target, category, msg string)
}
