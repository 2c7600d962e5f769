package cli

import (
	"fmt"
	"os"

	"github.com/scattering-central/pawsdoc/internal/app"
	"github.com/scattering-central/pawsdoc/internal/domain"
	"github.com/scattering-central/pawsdoc/internal/usecase"
	"github.com/spf13/cobra"
)

// genOptions collects the flag overrides for a generation run.
// Fields are ordered to minimize memory padding.
type genOptions struct {
	binary     string
	outputDir  string
	packageDir string
	title      string
	author     string
	manifest   string
	report     string
	excludes   []string
	depth      int
	force      bool
	forceSet   bool
	depthSet   bool
	dryRun     bool
	autoMeta   bool
}

func newGenCommand(c *app.Container) *cobra.Command {
	var opts genOptions

	cmd := &cobra.Command{
		Use:   "gen [package-dir]",
		Short: "Run sphinx-apidoc for a package",
		Long: `Run sphinx-apidoc for the configured package, or for the package
directory given as the argument. Flags override the effective
configuration for this run only.

With --from, the targets of a YAML manifest are generated one after
another; the first failing target aborts the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.packageDir = args[0]
			}
			opts.forceSet = cmd.Flags().Changed("force")
			opts.depthSet = cmd.Flags().Changed("depth")
			if opts.manifest != "" {
				return runGenerateBatch(cmd, c, opts)
			}
			return runGenerate(cmd, c, opts)
		},
	}

	cmd.Flags().StringVar(&opts.binary, "binary", "", "sphinx-apidoc binary to invoke")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", true, "overwrite existing stub files")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", domain.DefaultDepth, "maximum TOC depth")
	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "output directory for generated stubs")
	cmd.Flags().StringVarP(&opts.title, "title", "H", "", "project title passed to sphinx-apidoc")
	cmd.Flags().StringVarP(&opts.author, "author", "A", "", "authorship string passed to sphinx-apidoc")
	cmd.Flags().StringArrayVar(&opts.excludes, "exclude", nil, "path pattern to exclude (repeatable)")
	cmd.Flags().StringVar(&opts.manifest, "from", "", "generate every target of a YAML manifest")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a YAML generation report to this path")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the command line without executing it")
	cmd.Flags().BoolVar(&opts.autoMeta, "auto-meta", false, "derive unset title/author from the package's git repository")

	return cmd
}

// buildInvocation merges the effective config with the flag overrides.
func buildInvocation(c *app.Container, opts genOptions) (domain.Invocation, string, error) {
	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return domain.Invocation{}, "", fmt.Errorf("load config: %w", err)
	}

	inv := cfg.Invocation()
	if opts.binary != "" {
		inv.Binary = opts.binary
	}
	if opts.forceSet {
		inv.Force = opts.force
	}
	if opts.depthSet {
		inv.Depth = opts.depth
	}
	if opts.outputDir != "" {
		inv.OutputDir = opts.outputDir
	}
	if opts.packageDir != "" {
		inv.PackageDir = opts.packageDir
	}
	if opts.title != "" {
		inv.Title = opts.title
	}
	if opts.author != "" {
		inv.Author = opts.author
	}
	inv.Excludes = append(inv.Excludes, opts.excludes...)

	reportPath := opts.report
	if reportPath == "" {
		reportPath = cfg.Report.Path
	}
	return inv, reportPath, nil
}

func runGenerate(cmd *cobra.Command, c *app.Container, opts genOptions) error {
	inv, reportPath, err := buildInvocation(c, opts)
	if err != nil {
		return err
	}

	out, err := c.GenerateUseCase().Execute(cmd.Context(), usecase.GenerateInput{
		Invocation: inv,
		ReportPath: reportPath,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		DryRun:     opts.dryRun,
		AutoMeta:   opts.autoMeta,
	})
	if err != nil {
		return err
	}

	if out.DryRun {
		fmt.Fprintln(cmd.OutOrStdout(), out.CommandLine)
	}
	return nil
}

func runGenerateBatch(cmd *cobra.Command, c *app.Container, opts genOptions) error {
	data, err := os.ReadFile(opts.manifest)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	inv, reportPath, err := buildInvocation(c, opts)
	if err != nil {
		return err
	}

	out, err := c.GenerateBatchUseCase().Execute(cmd.Context(), usecase.GenerateBatchInput{
		ManifestData: data,
		Base:         inv,
		ReportPath:   reportPath,
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
		DryRun:       opts.dryRun,
		AutoMeta:     opts.autoMeta,
	})
	if err != nil {
		return err
	}

	if out.DryRun {
		for _, result := range out.Results {
			fmt.Fprintln(cmd.OutOrStdout(), result.CommandLine)
		}
	}
	return nil
}
