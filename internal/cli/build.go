package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stanzadev/stanza/internal/configloader"
	"github.com/stanzadev/stanza/internal/logging"
	"github.com/stanzadev/stanza/internal/ui/pretty"
	"github.com/stanzadev/stanza/pkg/site"
)

// ErrBuildFailed signals that the build completed but one or more documents
// failed to render. It maps to a non-zero exit code without an extra error
// log, since the failures are already reported.
var ErrBuildFailed = errors.New("build completed with errors")

type buildFlags struct {
	jobs int
}

func newBuildCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the whole site",
		Long: `Render every Markdown document under the content directory and write
the HTML output tree.

Document failures do not abort the build; every failing document is
reported and the command exits non-zero.

Examples:
  # Build the site in the current directory
  stanza build

  # Build a site elsewhere with four workers
  stanza build --root ~/blog --jobs 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = one per CPU)")

	return cmd
}

func runBuild(cmd *cobra.Command, flags buildFlags) error {
	logger := logging.Default()

	loadResult, root, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.Path,
		logging.FieldBaseURL, cfg.BaseURL,
		logging.FieldTheme, cfg.Markdown.HighlightTheme,
		logging.FieldJobs, flags.jobs,
	)

	builder, err := site.NewBuilder(root, cfg)
	if err != nil {
		return errors.Join(errors.New("failed to prepare site"), err)
	}

	start := time.Now()
	result, err := builder.Build(cmd.Context(), site.Options{Jobs: flags.jobs})
	if err != nil {
		return errors.Join(errors.New("build failed"), err)
	}
	elapsed := time.Since(start)

	logger.Debug("build finished",
		logging.FieldDocsDiscovered, result.Stats.Discovered,
		logging.FieldDocsRendered, result.Stats.Rendered,
		logging.FieldDocsErrored, result.Stats.Errored,
		logging.FieldDuration, elapsed,
	)

	styles := commandStyles(cmd)
	out := cmd.OutOrStdout()
	if result.HasFailures() {
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatFailures(result))
	}
	fmt.Fprint(out, styles.FormatBuildSummary(result.Stats, elapsed))

	if result.HasFailures() {
		return ErrBuildFailed
	}
	return nil
}

// loadSiteConfig resolves the site root and configuration from the root
// command's persistent flags. Returns the load result and the resolved root.
func loadSiteConfig(cmd *cobra.Command) (*configloader.LoadResult, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return nil, "", fmt.Errorf("get root flag: %w", err)
	}
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("get working directory: %w", err)
		}
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		Root:         root,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	return loadResult, root, nil
}

// commandStyles builds output styles honoring the --color persistent flag.
func commandStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}
