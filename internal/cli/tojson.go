package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-xmlkit/microdom"
	"github.com/go-xmlkit/microdom/microjson"
)

// NewToJSONCmd creates the tojson subcommand, which converts an XML
// document to JSON.
func NewToJSONCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "tojson FILE",
		Short: "Convert an XML document to JSON",
		Long: `Parse an XML document and print its JSON form.

Attributes become "@"-prefixed keys and repeated elements become arrays;
see the microjson package documentation for the full mapping. Reads from
stdin when FILE is "-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				doc *microdom.Document
				err error
			)
			if args[0] == "-" {
				doc, err = microdom.Parse(os.Stdin, microdom.TrimWhitespace())
			} else {
				doc, err = microdom.ParseFile(args[0], microdom.TrimWhitespace())
			}
			if err != nil {
				return err
			}

			var b []byte
			if compact {
				b, err = microjson.ToJSON(doc)
			} else {
				b, err = microjson.ToJSONIndent(doc, "", "  ")
			}
			if err != nil {
				return err
			}
			b = append(b, '\n')
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "Single-line JSON output")

	return cmd
}
