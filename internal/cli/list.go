package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/tui"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/cobra"
)

func newListCommand(c *app.Container) *cobra.Command {
	var (
		root  string
		depth int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documentable subpackages",
		Long: `Walk the configured package directory and list every Python package
found in it, up to the configured TOC depth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if root == "" {
				root = cfg.Apidoc.PackageDir
			}
			if !cmd.Flags().Changed("depth") {
				depth = cfg.Apidoc.Depth
			}

			out, err := c.ListPackagesUseCase().Execute(cmd.Context(), usecase.ListPackagesInput{
				Root:     root,
				Depth:    depth,
				Excludes: cfg.Apidoc.Excludes,
			})
			if err != nil {
				return err
			}

			if len(out.Packages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No packages found.")
				return nil
			}

			styles := tui.DefaultStyles()
			nameStyle := lipgloss.NewStyle().Foreground(tui.Colors.Primary)
			for _, pkg := range out.Packages {
				indent := strings.Repeat("  ", pkg.Depth)
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s\n",
					indent,
					nameStyle.Render(pkg.Name),
					styles.Path.Render(pkg.Path),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "package directory to scan (default from config)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "maximum nesting depth (default from config)")

	return cmd
}
