// Package cli provides the Cobra command structure for stanza.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/stanzadev/stanza/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root stanza command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var root string

	rootCmd := &cobra.Command{
		Use:   "stanza",
		Short: "A Markdown-to-HTML site renderer",
		Long: `stanza renders a tree of Markdown documents into an HTML site.

It parses CommonMark plus tables, task lists and strikethrough, splices
shortcode output into the document, resolves internal links against
site permalinks, assigns collision-free heading ids with a table of contents,
and highlights fenced code blocks server-side.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&root, "root", "", "site root directory (default: working directory)")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newSyntaxesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
