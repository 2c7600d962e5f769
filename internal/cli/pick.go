package cli

import (
	"fmt"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/tui"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/cobra"
)

// launchPickerFunc launches the interactive picker. Variable for testing.
var launchPickerFunc = tui.Run

func newPickCommand(c *app.Container) *cobra.Command {
	var (
		dryRun   bool
		autoMeta bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick subpackages interactively and generate their docs",
		Long: `Discover the subpackages of the configured package directory, pick
the ones to document in an interactive list, and run sphinx-apidoc for
each selection. Every selected subpackage gets its dotted name as the
project title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			scan, err := c.ListPackagesUseCase().Execute(cmd.Context(), usecase.ListPackagesInput{
				Root:     cfg.Apidoc.PackageDir,
				Depth:    cfg.Apidoc.Depth,
				Excludes: cfg.Apidoc.Excludes,
			})
			if err != nil {
				return err
			}
			if len(scan.Packages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No packages found.")
				return nil
			}

			picked, err := launchPickerFunc(scan.Packages)
			if err != nil {
				return err
			}
			if len(picked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing selected.")
				return nil
			}

			gen := c.GenerateUseCase()
			for _, pkg := range picked {
				inv := cfg.Invocation()
				inv.PackageDir = pkg.Path
				if inv.Title == "" {
					inv.Title = pkg.Name
				}

				out, err := gen.Execute(cmd.Context(), usecase.GenerateInput{
					Invocation: inv,
					TargetName: pkg.Name,
					Stdout:     cmd.OutOrStdout(),
					Stderr:     cmd.ErrOrStderr(),
					DryRun:     dryRun,
					AutoMeta:   autoMeta,
				})
				if err != nil {
					return fmt.Errorf("package %q: %w", pkg.Name, err)
				}
				if out.DryRun {
					fmt.Fprintln(cmd.OutOrStdout(), out.CommandLine)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the command lines without executing them")
	cmd.Flags().BoolVar(&autoMeta, "auto-meta", false, "derive unset author from the package's git repository")

	return cmd
}
