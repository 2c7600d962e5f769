package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/cobra"
)

func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pawsdoc configuration",
	}

	cmd.AddCommand(
		newConfigShowCommand(c),
		newConfigInitCommand(c),
		newConfigTemplateCommand(),
	)

	return cmd
}

// effectiveConfigView is the TOML shape printed by 'config show'. The
// keys mirror the config file format.
type effectiveConfigView struct {
	Apidoc struct {
		Binary     string   `toml:"binary"`
		Force      bool     `toml:"force"`
		Depth      int      `toml:"depth"`
		OutputDir  string   `toml:"output_dir"`
		PackageDir string   `toml:"package_dir"`
		Title      string   `toml:"title"`
		Author     string   `toml:"author"`
		Excludes   []string `toml:"excludes"`
	} `toml:"apidoc"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Report struct {
		Path string `toml:"path"`
	} `toml:"report"`
}

func newEffectiveConfigView(cfg *domain.Config) effectiveConfigView {
	var view effectiveConfigView
	view.Apidoc.Binary = cfg.Apidoc.Binary
	view.Apidoc.Force = cfg.Apidoc.Force
	view.Apidoc.Depth = cfg.Apidoc.Depth
	view.Apidoc.OutputDir = cfg.Apidoc.OutputDir
	view.Apidoc.PackageDir = cfg.Apidoc.PackageDir
	view.Apidoc.Title = cfg.Apidoc.Title
	view.Apidoc.Author = cfg.Apidoc.Author
	view.Apidoc.Excludes = cfg.Apidoc.Excludes
	view.Log.Level = cfg.Log.Level
	view.Report.Path = cfg.Report.Path
	return view
}

func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configuration files and the effective merged config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printConfigInfo(w, "Global config", out.GlobalConfig)
			printConfigInfo(w, "Repository config", out.RepoConfig)

			rendered, err := toml.Marshal(newEffectiveConfigView(out.EffectiveConfig))
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			fmt.Fprintf(w, "Effective config:\n%s", rendered)
			return nil
		},
	}
}

func printConfigInfo(w io.Writer, label string, info domain.ConfigInfo) {
	state := "not found"
	if info.Exists {
		state = "exists"
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", label, info.Path, state)
}

func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with the default template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
				Global: global,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "create the global config instead of the repository one")

	return cmd
}

func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default configuration template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), domain.RenderConfigTemplate(domain.NewDefaultConfig()))
			return nil
		},
	}
}
