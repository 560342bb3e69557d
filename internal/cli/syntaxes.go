package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyntaxesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "syntaxes",
		Short: "List available syntax grammars",
		Long: `List every syntax grammar usable in fenced code blocks, built-in plus
any supplementary grammars configured for the site.`,
		Args: cobra.NoArgs,
		RunE: runSyntaxes,
	}
}

func runSyntaxes(cmd *cobra.Command, _ []string) error {
	reg, _, err := siteRegistry(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range reg.Syntaxes() {
		fmt.Fprintln(out, name)
	}
	return nil
}
