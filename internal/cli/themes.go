package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanzadev/stanza/pkg/highlight"
)

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available highlight themes",
		Long: `List every syntax highlighting theme, built-in plus any supplementary
themes configured for the site. The configured theme is marked.`,
		Args: cobra.NoArgs,
		RunE: runThemes,
	}
}

func runThemes(cmd *cobra.Command, _ []string) error {
	reg, current, err := siteRegistry(cmd)
	if err != nil {
		return err
	}

	styles := commandStyles(cmd)
	out := cmd.OutOrStdout()
	for _, name := range reg.Themes() {
		if name == current {
			fmt.Fprintln(out, styles.Bold.Render(name+" (configured)"))
			continue
		}
		fmt.Fprintln(out, name)
	}
	return nil
}

// siteRegistry loads the site configuration and builds a highlight registry
// with its supplementary grammars and themes. Returns the configured theme
// name alongside.
func siteRegistry(cmd *cobra.Command) (*highlight.Registry, string, error) {
	loadResult, root, err := loadSiteConfig(cmd)
	if err != nil {
		return nil, "", err
	}
	md := loadResult.Config.Markdown

	reg := highlight.NewRegistry()
	if err := reg.LoadExtra(root, md.ExtraSyntaxes, md.ExtraHighlightThemes); err != nil {
		return nil, "", err
	}
	return reg, md.HighlightTheme, nil
}
