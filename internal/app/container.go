// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/infra/config"
	"github.com/scattering-central/pawsdoc/internal/infra/executor"
	"github.com/scattering-central/pawsdoc/internal/infra/gitmeta"
	"github.com/scattering-central/pawsdoc/internal/infra/logging"
	"github.com/scattering-central/pawsdoc/internal/infra/scanner"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/afero"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory pawsdoc was invoked from
	StateDir string // Path to the .pawsdoc state directory
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner        domain.CommandRunner
	Scanner       domain.PackageScanner
	Metadata      domain.ProjectMetadata
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Filesystem used by use cases that touch the output directory
	Fs afero.Fs

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given working directory.
func New(workDir string) (*Container, error) {
	cfg := Config{
		WorkDir:  workDir,
		StateDir: domain.StateDir(workDir),
	}

	configLoader := config.NewLoader(workDir)

	// Log level comes from the effective config; a broken config file
	// must not prevent startup, the warning surfaces on first Load.
	level := "info"
	if appCfg, err := configLoader.Load(); err == nil {
		level = appCfg.Log.Level
	}

	return &Container{
		Runner:        executor.NewClient(),
		Scanner:       scanner.New(),
		Metadata:      gitmeta.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Clock:         domain.RealClock{},
		Logger:        logging.New(cfg.StateDir, logging.ParseLevel(level)),
		Fs:            afero.NewOsFs(),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for
// testing.
func NewWithDeps(
	cfg Config,
	runner domain.CommandRunner,
	scn domain.PackageScanner,
	meta domain.ProjectMetadata,
	loader domain.ConfigLoader,
	manager domain.ConfigManager,
	clock domain.Clock,
	logger domain.Logger,
	fs afero.Fs,
) *Container {
	return &Container{
		Runner:        runner,
		Scanner:       scn,
		Metadata:      meta,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         clock,
		Logger:        logger,
		Fs:            fs,
		Config:        cfg,
	}
}

// UseCase factory methods

// GenerateUseCase returns a new Generate use case.
func (c *Container) GenerateUseCase() *usecase.Generate {
	return usecase.NewGenerate(c.Runner, c.Metadata, c.Logger, c.Clock, c.Fs)
}

// GenerateBatchUseCase returns a new GenerateBatch use case.
func (c *Container) GenerateBatchUseCase() *usecase.GenerateBatch {
	return usecase.NewGenerateBatch(c.GenerateUseCase())
}

// ListPackagesUseCase returns a new ListPackages use case.
func (c *Container) ListPackagesUseCase() *usecase.ListPackages {
	return usecase.NewListPackages(c.Scanner)
}

// CleanOutputUseCase returns a new CleanOutput use case.
func (c *Container) CleanOutputUseCase() *usecase.CleanOutput {
	return usecase.NewCleanOutput(c.Fs, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
