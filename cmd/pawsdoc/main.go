// Command pawsdoc generates Sphinx API documentation scaffolding for
// the paws package by wrapping sphinx-apidoc.
package main

import (
	"fmt"
	"os"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/cli"
	"github.com/scattering-central/pawsdoc/internal/domain"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// The wrapped tool's exit status passes through unchanged.
		os.Exit(domain.ExitStatus(err))
	}
}

func run(args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	container, err := app.New(workDir)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	root := cli.NewRootCommand(container, version)
	root.SetArgs(args)
	return root.Execute()
}
