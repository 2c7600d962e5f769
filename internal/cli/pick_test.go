package cli

import (
	"errors"
	"testing"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPicker(t *testing.T, picked []domain.Package, err error) {
	t.Helper()
	original := launchPickerFunc
	launchPickerFunc = func(_ []domain.Package) ([]domain.Package, error) {
		return picked, err
	}
	t.Cleanup(func() { launchPickerFunc = original })
}

func TestPickCommand_GeneratesSelection(t *testing.T) {
	c, deps := newTestContainer()
	deps.scanner.Packages = []domain.Package{
		{Name: "paws", Path: "../paws", Depth: 0},
		{Name: "paws.core", Path: "../paws/core", Depth: 1},
	}
	stubPicker(t, []domain.Package{
		{Name: "paws.core", Path: "../paws/core", Depth: 1},
	}, nil)

	_, _, err := execute(c, "pick")
	require.NoError(t, err)

	require.Len(t, deps.runner.Commands, 1)
	assert.Equal(t, []string{
		"-f", "-d", "3",
		"-H", "paws.core",
		"-o", domain.DefaultOutputDir,
		"../paws/core",
	}, deps.runner.Commands[0].Args)
}

func TestPickCommand_QuitWithoutSelection(t *testing.T) {
	c, deps := newTestContainer()
	deps.scanner.Packages = []domain.Package{{Name: "paws", Path: "../paws"}}
	stubPicker(t, nil, nil)

	stdout, _, err := execute(c, "pick")
	require.NoError(t, err)

	assert.Empty(t, deps.runner.Commands)
	assert.Contains(t, stdout, "Nothing selected.")
}

func TestPickCommand_NoPackages(t *testing.T) {
	c, deps := newTestContainer()
	stubPicker(t, nil, errors.New("picker must not launch"))

	stdout, _, err := execute(c, "pick")
	require.NoError(t, err)

	assert.Empty(t, deps.runner.Commands)
	assert.Contains(t, stdout, "No packages found.")
}

func TestPickCommand_DryRun(t *testing.T) {
	c, deps := newTestContainer()
	deps.scanner.Packages = []domain.Package{{Name: "paws", Path: "../paws"}}
	stubPicker(t, []domain.Package{{Name: "paws", Path: "../paws"}}, nil)

	stdout, _, err := execute(c, "pick", "--dry-run")
	require.NoError(t, err)

	assert.Empty(t, deps.runner.Commands)
	assert.Contains(t, stdout, `sphinx-apidoc -f -d 3 -H paws -o source/packagedoc_files ../paws`)
}
