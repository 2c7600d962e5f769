package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/spf13/afero"
)

// CleanOutputInput contains the parameters for removing generated stubs.
// Fields are ordered to minimize memory padding.
type CleanOutputInput struct {
	OutputDir  string // Directory holding the generated stubs
	PackageDir string // Documented package (determines stub naming)
	DryRun     bool   // List what would be removed without removing
}

// CleanOutputOutput contains the files that were (or would be) removed.
type CleanOutputOutput struct {
	Removed []string
	DryRun  bool
}

// CleanOutput is the use case for removing generated stub files from
// the output directory. It only ever touches files matching
// sphinx-apidoc's naming and never removes the directory itself.
type CleanOutput struct {
	fs     afero.Fs
	logger domain.Logger
}

// NewCleanOutput creates a new CleanOutput use case.
func NewCleanOutput(fs afero.Fs, logger domain.Logger) *CleanOutput {
	return &CleanOutput{fs: fs, logger: logger}
}

// Execute removes the generated stubs.
func (uc *CleanOutput) Execute(_ context.Context, in CleanOutputInput) (*CleanOutputOutput, error) {
	pkg := domain.PackageName(in.PackageDir)

	stubs, err := listStubs(uc.fs, in.OutputDir, pkg)
	if err != nil {
		return nil, err
	}

	out := &CleanOutputOutput{DryRun: in.DryRun}
	for _, name := range stubs {
		if !in.DryRun {
			if err := uc.fs.Remove(filepath.Join(in.OutputDir, name)); err != nil {
				return nil, fmt.Errorf("remove %s: %w", name, err)
			}
			if uc.logger != nil {
				uc.logger.Info("", "clean", "removed "+name)
			}
		}
		out.Removed = append(out.Removed, name)
	}
	sort.Strings(out.Removed)
	return out, nil
}
