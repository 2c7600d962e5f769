package usecase

import (
	"context"

	"github.com/scattering-central/pawsdoc/internal/domain"
)

// ListPackagesInput contains the parameters for discovering packages.
// Fields are ordered to minimize memory padding.
type ListPackagesInput struct {
	Root     string   // Package directory to scan
	Excludes []string // Patterns skipped during the walk
	Depth    int      // Maximum nesting depth below the root
}

// ListPackagesOutput contains the discovered packages.
type ListPackagesOutput struct {
	Packages []domain.Package
}

// ListPackages is the use case for discovering Python subpackages under
// the documented source tree.
type ListPackages struct {
	scanner domain.PackageScanner
}

// NewListPackages creates a new ListPackages use case.
func NewListPackages(scanner domain.PackageScanner) *ListPackages {
	return &ListPackages{scanner: scanner}
}

// Execute scans the root and returns the packages found.
func (uc *ListPackages) Execute(_ context.Context, in ListPackagesInput) (*ListPackagesOutput, error) {
	pkgs, err := uc.scanner.Scan(in.Root, in.Depth, in.Excludes)
	if err != nil {
		return nil, err
	}
	return &ListPackagesOutput{Packages: pkgs}, nil
}
