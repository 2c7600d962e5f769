package cli

import (
	"fmt"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/cobra"
)

func newCleanCommand(c *app.Container) *cobra.Command {
	var (
		outputDir  string
		packageDir string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated stub files",
		Long: `Remove the reStructuredText stubs sphinx-apidoc generated in the
output directory. Only files matching the generated naming scheme are
touched; hand-written files and the directory itself stay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if outputDir == "" {
				outputDir = cfg.Apidoc.OutputDir
			}
			if packageDir == "" {
				packageDir = cfg.Apidoc.PackageDir
			}

			out, err := c.CleanOutputUseCase().Execute(cmd.Context(), usecase.CleanOutputInput{
				OutputDir:  outputDir,
				PackageDir: packageDir,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			if len(out.Removed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to remove.")
				return nil
			}
			verb := "Removed"
			if out.DryRun {
				verb = "Would remove"
			}
			for _, name := range out.Removed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory to clean (default from config)")
	cmd.Flags().StringVar(&packageDir, "package", "", "documented package directory (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files without removing them")

	return cmd
}
