package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const batchManifest = `
targets:
  - name: api
    package_dir: ../paws/api
    title: paws.api
  - name: core
    package_dir: ../paws/core
    depth: 2
    excludes:
      - ../paws/core/qt
`

func TestGenerateBatch_Execute(t *testing.T) {
	runner := &testutil.MockRunner{}
	uc := NewGenerateBatch(newGenerate(runner, nil, nil))

	out, err := uc.Execute(context.Background(), GenerateBatchInput{
		ManifestData: []byte(batchManifest),
		Base:         domain.NewInvocation(),
	})

	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	require.Len(t, runner.Commands, 2)

	// First target: title flows into -H, defaults fill the rest.
	assert.Equal(t,
		[]string{"-f", "-d", "3", "-H", "paws.api", "-o", "source/packagedoc_files", "../paws/api"},
		runner.Commands[0].Args)

	// Second target: per-target depth and excludes.
	assert.Equal(t,
		[]string{"-f", "-d", "2", "-o", "source/packagedoc_files", "../paws/core", "../paws/core/qt"},
		runner.Commands[1].Args)

	assert.Equal(t, "api", out.Results[0].Name)
	assert.Equal(t, "core", out.Results[1].Name)
}

func TestGenerateBatch_Execute_FirstFailureAborts(t *testing.T) {
	runErr := errors.New("exit status 2")
	runner := &testutil.MockRunner{RunErr: runErr}
	uc := NewGenerateBatch(newGenerate(runner, nil, nil))

	_, err := uc.Execute(context.Background(), GenerateBatchInput{
		ManifestData: []byte(batchManifest),
		Base:         domain.NewInvocation(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, runErr)
	assert.Contains(t, err.Error(), `target "api"`)
	// The second target never ran.
	assert.Len(t, runner.Commands, 1)
}

func TestGenerateBatch_Execute_InvalidManifest(t *testing.T) {
	uc := NewGenerateBatch(newGenerate(&testutil.MockRunner{}, nil, nil))

	_, err := uc.Execute(context.Background(), GenerateBatchInput{
		ManifestData: []byte("targets: []"),
		Base:         domain.NewInvocation(),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyManifest)
}

func TestGenerateBatch_Execute_DryRun(t *testing.T) {
	runner := &testutil.MockRunner{}
	uc := NewGenerateBatch(newGenerate(runner, nil, nil))

	out, err := uc.Execute(context.Background(), GenerateBatchInput{
		ManifestData: []byte(batchManifest),
		Base:         domain.NewInvocation(),
		DryRun:       true,
	})

	require.NoError(t, err)
	assert.True(t, out.DryRun)
	assert.Empty(t, runner.Commands)
	require.Len(t, out.Results, 2)
	assert.Contains(t, out.Results[0].CommandLine, "../paws/api")
}

func TestGenerateBatch_Execute_Report(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "source/packagedoc_files/api.rst", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "source/packagedoc_files/core.rst", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "source/packagedoc_files/modules.rst", nil, 0o644))

	uc := NewGenerateBatch(newGenerate(&testutil.MockRunner{}, nil, fs))

	out, err := uc.Execute(context.Background(), GenerateBatchInput{
		ManifestData: []byte(batchManifest),
		Base:         domain.NewInvocation(),
		ReportPath:   "packagedoc-report.yaml",
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)

	data, err := afero.ReadFile(fs, "packagedoc-report.yaml")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	// Without a metadata source the report simply carries no commit.
	assert.Empty(t, report.Commit)
	require.Len(t, report.Targets, 2)
	assert.Equal(t, "api", report.Targets[0].Name)
	assert.Equal(t, "../paws/api", report.Targets[0].PackageDir)
	// Stub naming follows each target's package name.
	assert.Equal(t, []string{"api.rst", "modules.rst"}, report.Targets[0].Stubs)
	assert.Equal(t, []string{"core.rst", "modules.rst"}, report.Targets[1].Stubs)
}
