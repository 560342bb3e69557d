package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanzadev/stanza/pkg/site"
)

type renderFlags struct {
	toc bool
}

func newRenderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a single document to stdout",
		Long: `Render one Markdown document and print the HTML body to stdout,
without writing the output tree. The document path is relative to the
content directory.

Internal links still resolve against the whole site, so the rest of the
content tree is scanned for permalinks first.

Examples:
  # Render one page
  stanza render posts/hello.md

  # Print its table of contents as JSON instead
  stanza render posts/hello.md --toc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.toc, "toc", false, "print the table of contents as JSON instead of the body")

	return cmd
}

func runRender(cmd *cobra.Command, flags renderFlags, doc string) error {
	loadResult, root, err := loadSiteConfig(cmd)
	if err != nil {
		return err
	}

	builder, err := site.NewBuilder(root, loadResult.Config)
	if err != nil {
		return errors.Join(errors.New("failed to prepare site"), err)
	}

	rendered, err := builder.RenderDocument(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("render %s: %w", doc, err)
	}

	out := cmd.OutOrStdout()
	if flags.toc {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rendered.TOC)
	}

	fmt.Fprint(out, rendered.Body)
	return nil
}
