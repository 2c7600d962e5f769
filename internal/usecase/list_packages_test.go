package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPackages_Execute(t *testing.T) {
	scanner := &testutil.MockScanner{Packages: []domain.Package{
		{Name: "paws", Path: "../paws", Depth: 0},
		{Name: "paws.api", Path: "../paws/api", Depth: 1},
	}}
	uc := NewListPackages(scanner)

	out, err := uc.Execute(context.Background(), ListPackagesInput{
		Root:     "../paws/",
		Depth:    3,
		Excludes: []string{"qt"},
	})

	require.NoError(t, err)
	require.Len(t, out.Packages, 2)
	assert.Equal(t, "../paws/", scanner.LastRoot)
	assert.Equal(t, 3, scanner.LastDepth)
	assert.Equal(t, []string{"qt"}, scanner.LastExcludes)
}

func TestListPackages_Execute_ScanError(t *testing.T) {
	scanErr := errors.New("not a directory")
	uc := NewListPackages(&testutil.MockScanner{ScanErr: scanErr})

	_, err := uc.Execute(context.Background(), ListPackagesInput{Root: "missing"})
	assert.ErrorIs(t, err, scanErr)
}
