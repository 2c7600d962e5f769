package cli

import (
	"testing"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	c, deps := newTestContainer()
	deps.scanner.Packages = []domain.Package{
		{Name: "paws", Path: "../paws", Depth: 0},
		{Name: "paws.core", Path: "../paws/core", Depth: 1},
	}

	stdout, _, err := execute(c, "list")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPackageDir, deps.scanner.LastRoot)
	assert.Equal(t, domain.DefaultDepth, deps.scanner.LastDepth)
	assert.Contains(t, stdout, "paws")
	assert.Contains(t, stdout, "paws.core")
}

func TestListCommand_Empty(t *testing.T) {
	c, _ := newTestContainer()

	stdout, _, err := execute(c, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No packages found.")
}

func TestListCommand_RootAndDepthFlags(t *testing.T) {
	c, deps := newTestContainer()

	_, _, err := execute(c, "list", "--root", "../other", "-d", "1")
	require.NoError(t, err)

	assert.Equal(t, "../other", deps.scanner.LastRoot)
	assert.Equal(t, 1, deps.scanner.LastDepth)
}
