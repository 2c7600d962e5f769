package cli

import (
	"testing"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowCommand(t *testing.T) {
	c, deps := newTestContainer()
	deps.manager.RepoInfo = domain.ConfigInfo{Path: "/repo/pawsdoc.toml", Exists: true}
	deps.manager.GlobalInfo = domain.ConfigInfo{Path: "/home/u/.config/pawsdoc/pawsdoc.toml"}

	stdout, _, err := execute(c, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "/repo/pawsdoc.toml (exists)")
	assert.Contains(t, stdout, "/home/u/.config/pawsdoc/pawsdoc.toml (not found)")
	assert.Contains(t, stdout, "[apidoc]")
	assert.Contains(t, stdout, "'sphinx-apidoc'")
}

func TestConfigInitCommand(t *testing.T) {
	c, deps := newTestContainer()
	deps.manager.RepoInfo = domain.ConfigInfo{Path: "/repo/pawsdoc.toml"}

	stdout, _, err := execute(c, "config", "init")
	require.NoError(t, err)

	assert.True(t, deps.manager.RepoInitialized)
	assert.False(t, deps.manager.GlobalInitialized)
	assert.Contains(t, stdout, "Created /repo/pawsdoc.toml")
}

func TestConfigInitCommand_Global(t *testing.T) {
	c, deps := newTestContainer()
	deps.manager.GlobalInfo = domain.ConfigInfo{Path: "/home/u/.config/pawsdoc/pawsdoc.toml"}

	_, _, err := execute(c, "config", "init", "--global")
	require.NoError(t, err)

	assert.True(t, deps.manager.GlobalInitialized)
	assert.False(t, deps.manager.RepoInitialized)
}

func TestConfigInitCommand_AlreadyExists(t *testing.T) {
	c, deps := newTestContainer()
	deps.manager.InitRepoErr = domain.ErrConfigExists

	_, _, err := execute(c, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigTemplateCommand(t *testing.T) {
	c, _ := newTestContainer()

	stdout, _, err := execute(c, "config", "template")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[apidoc]")
	assert.Contains(t, stdout, `binary = "sphinx-apidoc"`)
	assert.Contains(t, stdout, `output_dir = "source/packagedoc_files"`)
}
