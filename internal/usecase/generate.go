// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/spf13/afero"
)

// GenerateInput contains the parameters for a single sphinx-apidoc run.
// Fields are ordered to minimize memory padding.
type GenerateInput struct {
	Invocation domain.Invocation // Fully-built invocation (config + flag overrides)
	TargetName string            // Name used for logging and reports ("" = package name)
	ReportPath string            // Write a YAML report here after success ("" = disabled)
	Stdout     io.Writer         // Tool stdout (streamed through, never interpreted)
	Stderr     io.Writer         // Tool stderr
	DryRun     bool              // Print the command line instead of executing
	AutoMeta   bool              // Fill unset title/author from the package's git repo
}

// GenerateOutput contains the result of a run.
type GenerateOutput struct {
	CommandLine string   // Rendered command line
	Argv        []string // Arguments passed to the binary
	Stubs       []string // Stub files present in the output dir (report runs only)
	DryRun      bool
}

// Generate is the use case for running sphinx-apidoc once.
type Generate struct {
	runner domain.CommandRunner
	meta   domain.ProjectMetadata
	logger domain.Logger
	clock  domain.Clock
	fs     afero.Fs
}

// NewGenerate creates a new Generate use case.
func NewGenerate(
	runner domain.CommandRunner,
	meta domain.ProjectMetadata,
	logger domain.Logger,
	clock domain.Clock,
	fs afero.Fs,
) *Generate {
	return &Generate{
		runner: runner,
		meta:   meta,
		logger: logger,
		clock:  clock,
		fs:     fs,
	}
}

// Execute runs sphinx-apidoc with the given invocation. The external
// tool's exit status travels back unchanged inside the returned error;
// callers propagate it via domain.ExitStatus.
func (uc *Generate) Execute(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	inv, err := uc.prepare(in.Invocation, in.AutoMeta)
	if err != nil {
		return nil, err
	}

	target := in.TargetName
	if target == "" {
		target = domain.PackageName(inv.PackageDir)
	}

	out := &GenerateOutput{
		CommandLine: inv.CommandLine(),
		Argv:        inv.Argv(),
		DryRun:      in.DryRun,
	}

	if in.DryRun {
		return out, nil
	}

	if uc.logger != nil {
		uc.logger.Info(target, "gen", out.CommandLine)
	}

	if err := uc.runner.Run(ctx, inv.Command(), in.Stdout, in.Stderr); err != nil {
		if uc.logger != nil {
			uc.logger.Error(target, "gen", err.Error())
		}
		return nil, fmt.Errorf("run %s: %w", inv.Binary, err)
	}

	if in.ReportPath != "" {
		stubs, err := listStubs(uc.fs, inv.OutputDir, domain.PackageName(inv.PackageDir))
		if err != nil {
			return nil, err
		}
		out.Stubs = stubs

		report := domain.Report{
			GeneratedAt: uc.clock.Now(),
			Targets: []domain.ReportTarget{{
				Name:       target,
				PackageDir: inv.PackageDir,
				Argv:       out.Argv,
				Stubs:      stubs,
			}},
		}
		uc.stampCommit(&report, inv.PackageDir)
		if err := writeReport(uc.fs, in.ReportPath, &report); err != nil {
			return nil, err
		}
	}

	if uc.logger != nil {
		uc.logger.Info(target, "gen", "generation finished")
	}
	return out, nil
}

// prepare validates the invocation and, when requested, fills unset
// title/author from the package's git repository. The default run never
// does this: its argument list must stay byte-for-byte the historical
// one.
func (uc *Generate) prepare(inv domain.Invocation, autoMeta bool) (domain.Invocation, error) {
	if autoMeta && (inv.Title == "" || inv.Author == "") && uc.meta != nil {
		info, err := uc.meta.Describe(inv.PackageDir)
		if err != nil {
			// Metadata is a convenience; a broken repository must not
			// block generation.
			if uc.logger != nil {
				uc.logger.Warn("", "meta", err.Error())
			}
		} else {
			if inv.Title == "" {
				inv.Title = info.Name
			}
			if inv.Author == "" {
				inv.Author = info.Author
			}
		}
	}
	if err := inv.Validate(); err != nil {
		return inv, err
	}
	return inv, nil
}

// stampCommit records the package repository's HEAD in the report.
func (uc *Generate) stampCommit(report *domain.Report, packageDir string) {
	if uc.meta == nil {
		return
	}
	if info, err := uc.meta.Describe(packageDir); err == nil {
		report.Commit = info.Commit
	}
}
