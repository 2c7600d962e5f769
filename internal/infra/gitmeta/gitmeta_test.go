package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and returns its path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.py"), []byte("# paws"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("setup.py")
	require.NoError(t, err)
	_, err = wt.Commit("initial import", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Beamline Operator",
			Email: "ops@example.org",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return dir
}

func TestClient_Describe(t *testing.T) {
	dir := initRepo(t)
	client := NewClient()

	info, err := client.Describe(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Equal(t, "Beamline Operator", info.Author)
	assert.Len(t, info.Commit, 7)
}

func TestClient_Describe_SubdirDetectsDotGit(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "core", "operations")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := NewClient().Describe(sub)
	require.NoError(t, err)
	assert.Equal(t, "Beamline Operator", info.Author)
}

func TestClient_Describe_OriginRemoteName(t *testing.T) {
	dir := initRepo(t)
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/scattering-central/paws.git"},
	})
	require.NoError(t, err)

	info, err := NewClient().Describe(dir)
	require.NoError(t, err)
	assert.Equal(t, "paws", info.Name)
}

func TestClient_Describe_NoRepository(t *testing.T) {
	info, err := NewClient().Describe(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, info.Name)
	assert.Empty(t, info.Author)
	assert.Empty(t, info.Commit)
}

func TestClient_Describe_EmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	info, err := NewClient().Describe(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Empty(t, info.Commit)
}

func TestNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/scattering-central/paws.git", "paws"},
		{"https://github.com/scattering-central/paws", "paws"},
		{"git@github.com:scattering-central/paws.git", "paws"},
		{"paws", "paws"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFromURL(tt.url))
		})
	}
}
