// Package scanner discovers Python packages under a source tree.
package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/spf13/afero"
)

// initFile marks a directory as a Python package.
const initFile = "__init__.py"

// Ensure Scanner implements domain.PackageScanner.
var _ domain.PackageScanner = (*Scanner)(nil)

// Scanner walks a filesystem looking for Python packages.
type Scanner struct {
	fs afero.Fs
}

// New creates a Scanner on the OS filesystem.
func New() *Scanner {
	return &Scanner{fs: afero.NewOsFs()}
}

// NewWithFs creates a Scanner on the given filesystem. This is useful
// for testing with an in-memory filesystem.
func NewWithFs(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

// Scan walks root and returns the packages found, shallowest first and
// alphabetical within a depth. maxDepth bounds the nesting level below
// root (0 = root only). excludes are glob patterns matched against
// slash-separated paths relative to root and against directory names.
func (s *Scanner) Scan(root string, maxDepth int, excludes []string) ([]domain.Package, error) {
	exists, err := afero.DirExists(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !exists {
		return nil, fmt.Errorf("scan %s: not a directory", root)
	}

	rootName := domain.PackageName(root)
	var pkgs []domain.Package
	if err := s.walk(root, rootName, "", 0, maxDepth, excludes, &pkgs); err != nil {
		return nil, err
	}

	sort.Slice(pkgs, func(i, j int) bool {
		if pkgs[i].Depth != pkgs[j].Depth {
			return pkgs[i].Depth < pkgs[j].Depth
		}
		return pkgs[i].Name < pkgs[j].Name
	})
	return pkgs, nil
}

// walk recurses into dir. rel is the slash-separated path of dir
// relative to the scan root ("" for the root itself).
func (s *Scanner) walk(dir, name, rel string, depth, maxDepth int, excludes []string, pkgs *[]domain.Package) error {
	isPkg, err := afero.Exists(s.fs, filepath.Join(dir, initFile))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	// The root directory itself may be a plain source tree holding
	// several top-level packages; only recurse through it in that case.
	if isPkg {
		*pkgs = append(*pkgs, domain.Package{Name: name, Path: dir, Depth: depth})
	} else if rel != "" {
		// Non-package subdirectories end the package tree.
		return nil
	}

	if depth >= maxDepth {
		return nil
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		childRel := entry.Name()
		if rel != "" {
			childRel = rel + "/" + entry.Name()
		}
		if excluded(childRel, entry.Name(), excludes) {
			continue
		}
		childName := name + "." + entry.Name()
		if !isPkg {
			// Children of a non-package root are top-level packages.
			childName = entry.Name()
		}
		childDir := filepath.Join(dir, entry.Name())
		if err := s.walk(childDir, childName, childRel, depth+1, maxDepth, excludes, pkgs); err != nil {
			return err
		}
	}
	return nil
}

// excluded reports whether rel (or the bare directory name) matches any
// exclude pattern.
func excluded(rel, base string, excludes []string) bool {
	for _, pattern := range excludes {
		// Patterns may be written relative to the package dir the way
		// sphinx-apidoc takes them; strip leading path noise.
		pattern = strings.TrimPrefix(pattern, "./")
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
