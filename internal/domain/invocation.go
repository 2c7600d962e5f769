// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"strings"
)

// Default values for the sphinx-apidoc invocation. These mirror the
// historical generation script for the paws package.
const (
	DefaultBinary     = "sphinx-apidoc"
	DefaultDepth      = 3
	DefaultOutputDir  = "source/packagedoc_files"
	DefaultPackageDir = "../paws/"
)

// Invocation describes a single sphinx-apidoc run.
// The argument list is constructed once and never mutated afterwards;
// pawsdoc does not inspect or react to the tool's output.
// Fields are ordered to minimize memory padding.
type Invocation struct {
	Binary     string   // sphinx-apidoc binary (name or path)
	Dir        string   // working directory for the run ("" = current)
	OutputDir  string   // -o: destination for generated stubs
	PackageDir string   // positional: package to document
	Title      string   // -H: project title (omitted when empty)
	Author     string   // -A: authorship string (omitted when empty)
	Excludes   []string // positional: path patterns excluded from generation
	Depth      int      // -d: maximum TOC depth
	Force      bool     // -f: overwrite existing stub files
}

// NewInvocation returns an Invocation with the default argument set:
// force on, depth 3, output under source/packagedoc_files, documenting
// the paws package one directory up.
func NewInvocation() Invocation {
	return Invocation{
		Binary:     DefaultBinary,
		Force:      true,
		Depth:      DefaultDepth,
		OutputDir:  DefaultOutputDir,
		PackageDir: DefaultPackageDir,
	}
}

// Argv returns the argument list passed to the binary, in the order
// sphinx-apidoc documents: flags, output directory, package directory,
// then exclude patterns.
func (inv Invocation) Argv() []string {
	args := make([]string, 0, 8+len(inv.Excludes))
	if inv.Force {
		args = append(args, "-f")
	}
	if inv.Depth > 0 {
		args = append(args, "-d", strconv.Itoa(inv.Depth))
	}
	if inv.Title != "" {
		args = append(args, "-H", inv.Title)
	}
	if inv.Author != "" {
		args = append(args, "-A", inv.Author)
	}
	args = append(args, "-o", inv.OutputDir, inv.PackageDir)
	args = append(args, inv.Excludes...)
	return args
}

// Command returns the invocation as an ExecCommand for the runner port.
func (inv Invocation) Command() *ExecCommand {
	return &ExecCommand{
		Program: inv.Binary,
		Dir:     inv.Dir,
		Args:    inv.Argv(),
	}
}

// CommandLine renders the invocation as a shell-style command line.
// Used by --dry-run output; arguments needing quoting are single-quoted
// with embedded quotes escaped the POSIX way.
func (inv Invocation) CommandLine() string {
	parts := append([]string{inv.Binary}, inv.Argv()...)
	for i, p := range parts {
		parts[i] = shellQuote(p)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t'\"\\$") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Validate checks the invocation for fields the external tool cannot
// default on its own.
func (inv Invocation) Validate() error {
	if inv.Binary == "" {
		return ErrNoBinary
	}
	if inv.OutputDir == "" {
		return ErrNoOutputDir
	}
	if inv.PackageDir == "" {
		return ErrNoPackageDir
	}
	return nil
}
