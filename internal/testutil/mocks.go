// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/scattering-central/pawsdoc/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockRunner is a test double for domain.CommandRunner. It records every
// command it receives and optionally writes canned output.
// Fields are ordered to minimize memory padding.
type MockRunner struct {
	Commands []*domain.ExecCommand
	Stdout   string
	Stderr   string
	RunErr   error
}

// Run records the command and returns the configured error.
func (m *MockRunner) Run(_ context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	m.Commands = append(m.Commands, cmd)
	if m.Stdout != "" && stdout != nil {
		_, _ = io.WriteString(stdout, m.Stdout)
	}
	if m.Stderr != "" && stderr != nil {
		_, _ = io.WriteString(stderr, m.Stderr)
	}
	return m.RunErr
}

// MockScanner is a test double for domain.PackageScanner.
type MockScanner struct {
	Packages []domain.Package
	ScanErr  error

	LastRoot     string
	LastDepth    int
	LastExcludes []string
}

// Scan returns the configured packages.
func (m *MockScanner) Scan(root string, maxDepth int, excludes []string) ([]domain.Package, error) {
	m.LastRoot = root
	m.LastDepth = maxDepth
	m.LastExcludes = excludes
	if m.ScanErr != nil {
		return nil, m.ScanErr
	}
	return m.Packages, nil
}

// MockMetadata is a test double for domain.ProjectMetadata.
type MockMetadata struct {
	Info        domain.ProjectInfo
	DescribeErr error
}

// Describe returns the configured project info.
func (m *MockMetadata) Describe(_ string) (*domain.ProjectInfo, error) {
	if m.DescribeErr != nil {
		return nil, m.DescribeErr
	}
	info := m.Info
	return &info, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or the defaults when unset.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load in the mock.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	RepoInfo      domain.ConfigInfo
	GlobalInfo    domain.ConfigInfo
	InitRepoErr   error
	InitGlobalErr error

	RepoInitialized   bool
	GlobalInitialized bool
}

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo { return m.RepoInfo }

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitRepoConfig records the call and returns the configured error.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	if m.InitRepoErr != nil {
		return m.InitRepoErr
	}
	m.RepoInitialized = true
	return nil
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	if m.InitGlobalErr != nil {
		return m.InitGlobalErr
	}
	m.GlobalInitialized = true
	return nil
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []string
}

func (m *MockLogger) record(level, target, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s %s %s", level, target, category, msg))
}

// Debug records a debug entry.
func (m *MockLogger) Debug(target, category, msg string) { m.record("DEBUG", target, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(target, category, msg string) { m.record("INFO", target, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(target, category, msg string) { m.record("WARN", target, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(target, category, msg string) { m.record("ERROR", target, category, msg) }
