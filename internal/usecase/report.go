package usecase

import (
	"fmt"
	"sort"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// listStubs returns the generated stub files present in outputDir,
// sorted by name. Only files matching sphinx-apidoc's naming for pkg
// are reported.
func listStubs(fs afero.Fs, outputDir, pkg string) ([]string, error) {
	entries, err := afero.ReadDir(fs, outputDir)
	if err != nil {
		return nil, fmt.Errorf("read output directory: %w", err)
	}

	var stubs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if domain.IsGeneratedStub(entry.Name(), pkg) {
			stubs = append(stubs, entry.Name())
		}
	}
	sort.Strings(stubs)
	return stubs, nil
}

// writeReport marshals the report to YAML and writes it to path.
func writeReport(fs afero.Fs, path string, report *domain.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
