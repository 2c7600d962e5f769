package domain

import (
	"path/filepath"
	"strings"
)

// PackageName derives the top-level package name from a package
// directory path ("../paws/" -> "paws").
func PackageName(packageDir string) string {
	return filepath.Base(filepath.Clean(packageDir))
}

// IsGeneratedStub reports whether name matches the file naming
// sphinx-apidoc uses for the given package: "modules.rst", "<pkg>.rst"
// or "<pkg>.<sub...>.rst". Cleanup only ever touches these; anything
// else in the output directory is assumed to be hand-written.
func IsGeneratedStub(name, pkg string) bool {
	if name == "modules.rst" {
		return true
	}
	if !strings.HasSuffix(name, ".rst") || pkg == "" {
		return false
	}
	base := strings.TrimSuffix(name, ".rst")
	if base == pkg {
		return true
	}
	if !strings.HasPrefix(base, pkg+".") {
		return false
	}
	// Every dotted segment must be a plausible module identifier.
	for _, seg := range strings.Split(base, ".") {
		if !isIdentifier(seg) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
