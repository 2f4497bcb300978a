// Package cli assembles the microdom command-line tool.
package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the root cobra command and wires up the subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "microdom",
		Short: "microdom - inspect and rewrite XML documents",
		Long: `microdom reads XML documents into an in-memory tree and writes them back
out in different shapes.

Use subcommands to perform different operations:
  - fmt: re-indent an XML document
  - validate: check documents for well-formedness
  - tojson: convert an XML document to JSON`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewFmtCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewToJSONCmd())

	return rootCmd
}
