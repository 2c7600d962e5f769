package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	content := `
targets:
  - name: api
    package_dir: ../paws/api
    title: paws.api
    author: SSRL
  - name: core
    package_dir: ../paws/core
    depth: 2
    excludes:
      - ../paws/core/qt
`
	m, err := ParseManifest([]byte(content))
	require.NoError(t, err)
	require.Len(t, m.Targets, 2)

	assert.Equal(t, "api", m.Targets[0].Name)
	assert.Equal(t, "../paws/api", m.Targets[0].PackageDir)
	assert.Equal(t, "paws.api", m.Targets[0].Title)
	assert.Equal(t, "SSRL", m.Targets[0].Author)

	assert.Equal(t, 2, m.Targets[1].Depth)
	assert.Equal(t, []string{"../paws/core/qt"}, m.Targets[1].Excludes)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "empty manifest",
			content: "targets: []",
			wantErr: ErrEmptyManifest,
		},
		{
			name:    "missing name",
			content: "targets:\n  - package_dir: ../paws\n",
			wantErr: ErrTargetNoName,
		},
		{
			name:    "missing package dir",
			content: "targets:\n  - name: api\n",
			wantErr: ErrTargetNoPackage,
		},
		{
			name:    "duplicate name",
			content: "targets:\n  - name: api\n    package_dir: a\n  - name: api\n    package_dir: b\n",
			wantErr: ErrDuplicateTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseManifest([]byte("targets: ["))
		require.Error(t, err)
	})
}

func TestTarget_Invocation(t *testing.T) {
	base := NewInvocation()
	base.Excludes = []string{"../paws/qt"}

	target := Target{
		Name:       "core",
		PackageDir: "../paws/core",
		Title:      "paws.core",
		Depth:      2,
		Excludes:   []string{"../paws/core/legacy"},
	}

	inv := target.Invocation(base)

	assert.Equal(t, "../paws/core", inv.PackageDir)
	assert.Equal(t, "paws.core", inv.Title)
	assert.Equal(t, 2, inv.Depth)
	// Base excludes are kept, target excludes appended.
	assert.Equal(t, []string{"../paws/qt", "../paws/core/legacy"}, inv.Excludes)
	// Untouched fields fall back to base.
	assert.Equal(t, base.OutputDir, inv.OutputDir)
	assert.True(t, inv.Force)

	// Base must not be mutated by building target invocations.
	assert.Equal(t, []string{"../paws/qt"}, base.Excludes)
}
