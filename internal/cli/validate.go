package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-xmlkit/microdom"
)

// NewValidateCmd creates the validate subcommand, which checks XML files
// for well-formedness.
func NewValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check XML documents for well-formedness",
		Long: `Parse each FILE and report syntax errors with their position.

The exit status is non-zero if any file fails to parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if _, err := microdom.ParseFile(path); err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					continue
				}
				if verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
				}
			}
			if failed > 0 {
				return errors.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also report files that parse cleanly")

	return cmd
}
