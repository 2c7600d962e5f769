package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/scattering-central/pawsdoc/internal/domain"
)

// GenerateBatchInput contains the parameters for a manifest-driven run.
// Fields are ordered to minimize memory padding.
type GenerateBatchInput struct {
	ManifestData []byte            // Raw YAML manifest content
	Base         domain.Invocation // Invocation template from the effective config
	ReportPath   string            // Write a combined YAML report here ("" = disabled)
	Stdout       io.Writer
	Stderr       io.Writer
	DryRun       bool
	AutoMeta     bool
}

// BatchTargetResult records the outcome of one manifest target.
type BatchTargetResult struct {
	Name        string
	CommandLine string
	Stubs       []string
}

// GenerateBatchOutput contains the results of all targets, in manifest
// order.
type GenerateBatchOutput struct {
	Results []BatchTargetResult
	DryRun  bool
}

// GenerateBatch is the use case for running sphinx-apidoc for every
// target of a manifest. Targets run sequentially; the first failure
// aborts the batch with that target's exit status.
type GenerateBatch struct {
	generate *Generate
}

// NewGenerateBatch creates a new GenerateBatch use case.
func NewGenerateBatch(generate *Generate) *GenerateBatch {
	return &GenerateBatch{generate: generate}
}

// Execute parses the manifest and runs every target.
func (uc *GenerateBatch) Execute(ctx context.Context, in GenerateBatchInput) (*GenerateBatchOutput, error) {
	manifest, err := domain.ParseManifest(in.ManifestData)
	if err != nil {
		return nil, err
	}

	out := &GenerateBatchOutput{
		Results: make([]BatchTargetResult, 0, len(manifest.Targets)),
		DryRun:  in.DryRun,
	}

	report := domain.Report{GeneratedAt: uc.generate.clock.Now()}

	for _, target := range manifest.Targets {
		inv := target.Invocation(in.Base)

		genOut, err := uc.generate.Execute(ctx, GenerateInput{
			Invocation: inv,
			TargetName: target.Name,
			Stdout:     in.Stdout,
			Stderr:     in.Stderr,
			DryRun:     in.DryRun,
			AutoMeta:   in.AutoMeta,
		})
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", target.Name, err)
		}

		result := BatchTargetResult{
			Name:        target.Name,
			CommandLine: genOut.CommandLine,
		}

		if in.ReportPath != "" && !in.DryRun {
			stubs, err := listStubs(uc.generate.fs, inv.OutputDir, domain.PackageName(inv.PackageDir))
			if err != nil {
				return nil, fmt.Errorf("target %q: %w", target.Name, err)
			}
			result.Stubs = stubs
			report.Targets = append(report.Targets, domain.ReportTarget{
				Name:       target.Name,
				PackageDir: inv.PackageDir,
				Argv:       genOut.Argv,
				Stubs:      stubs,
			})
			uc.generate.stampCommit(&report, inv.PackageDir)
		}

		out.Results = append(out.Results, result)
	}

	if in.ReportPath != "" && !in.DryRun {
		if err := writeReport(uc.generate.fs, in.ReportPath, &report); err != nil {
			return nil, err
		}
	}
	return out, nil
}
