package domain

import (
	"errors"
	"os/exec"
)

// Domain errors.
var (
	ErrNoBinary         = errors.New("apidoc binary not configured")
	ErrNoOutputDir      = errors.New("output directory not configured")
	ErrNoPackageDir     = errors.New("package directory not configured")
	ErrConfigExists     = errors.New("config file already exists")
	ErrEmptyManifest    = errors.New("manifest contains no targets")
	ErrDuplicateTarget  = errors.New("duplicate target name in manifest")
	ErrTargetNoName     = errors.New("manifest target is missing a name")
	ErrTargetNoPackage  = errors.New("manifest target is missing a package directory")
	ErrNotGeneratedStub = errors.New("file does not look like a generated stub")
)

// ExitStatus extracts the process exit status from an error returned by
// the command runner. The external tool's status propagates verbatim;
// any other error maps to 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
