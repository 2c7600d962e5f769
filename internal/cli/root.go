// Package cli provides the command-line interface for pawsdoc.
package cli

import (
	"fmt"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupGenerate = "generate"
	groupSetup    = "setup"
)

// NewRootCommand creates the root command for pawsdoc.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pawsdoc",
		Short: "Generate Sphinx API documentation scaffolding for paws",
		Long: `pawsdoc wraps sphinx-apidoc to scaffold API documentation for the
paws package. Run without arguments it reproduces the historical
generation call:

  sphinx-apidoc -f -d 3 -o source/packagedoc_files ../paws/

The tool's output and exit status pass through unchanged. Use 'gen'
for per-subpackage runs, 'pick' for an interactive selection, and
'clean' to remove generated stubs.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Config problems surface on the command that needs it.
				return nil
			}
			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The bare invocation is the historical script: one fixed
			// sphinx-apidoc call with the configured defaults.
			return runGenerate(cmd, c, genOptions{})
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generation:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	genCmd := newGenCommand(c)
	genCmd.GroupID = groupGenerate

	pickCmd := newPickCommand(c)
	pickCmd.GroupID = groupGenerate

	listCmd := newListCommand(c)
	listCmd.GroupID = groupGenerate

	cleanCmd := newCleanCommand(c)
	cleanCmd.GroupID = groupGenerate

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		genCmd,
		pickCmd,
		listCmd,
		cleanCmd,
		configCmd,
	)

	return root
}
