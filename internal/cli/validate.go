package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command. It exits non-zero when the
// graph file is inconsistent, making it usable as a CI gate for collectors.
func (c *CLI) validateCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an OpenGraph JSON file",
		Long: `Load an OpenGraph JSON file and check it for inconsistencies: malformed
nodes or edges, duplicate node ids, and id-matched edge endpoints that do
not resolve against the file's own node set.

Isolated nodes are reported as warnings but do not fail validation; a
collector may legitimately emit nodes it has no relationships for.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(args[0], schemaPath)
			if err != nil {
				return err
			}

			if isolated := g.IsolatedNodes(); len(isolated) > 0 {
				printWarning("%d isolated node(s)", len(isolated))
				for _, n := range isolated {
					printDetail("%s (%s)", n.ID(), n.PrimaryKind())
				}
			}

			if err := g.Validate(); err != nil {
				for _, issue := range splitJoined(err) {
					printError("%s", issue)
				}
				return fmt.Errorf("%s: validation failed", args[0])
			}

			printSuccess("%s is valid", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "TOML schema config (reserved kinds, icon presets)")
	return cmd
}
