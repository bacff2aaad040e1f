package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p0dalirius/bhopengraph/pkg/opengraph"
	"github.com/p0dalirius/bhopengraph/pkg/schema"
)

// infoCommand creates the info command, which summarizes a graph file.
func (c *CLI) infoCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize an OpenGraph JSON file",
		Long: `Load an OpenGraph JSON file and print its source kind, node and edge
counts with connected/isolated breakdowns, the kinds in use, custom icons,
and the validation report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(args[0], schemaPath)
			if err != nil {
				return err
			}
			printGraphInfo(args[0], g)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "TOML schema config (reserved kinds, icon presets)")
	return cmd
}

// loadGraph imports a graph file, applying an optional schema config.
func (c *CLI) loadGraph(path, schemaPath string) (*opengraph.Graph, error) {
	var opts []opengraph.Option
	if schemaPath != "" {
		cfg, err := schema.Load(schemaPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opengraph.WithSchema(cfg))
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("Loading graph from %s (size %s)", path, humanSize(st.Size()))

	g, err := opengraph.ImportFromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("Graph loaded: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	return g, nil
}

func printGraphInfo(path string, g *opengraph.Graph) {
	printInfo("%s", path)
	printKeyValue("Source kind", g.SourceKind())
	printCount("Nodes", g.NodeCount(), len(g.IsolatedNodes()))
	printCount("Edges", g.EdgeCount(), len(g.IsolatedEdges()))
	if kinds := g.Kinds(); len(kinds) > 0 {
		printKeyValue("Kinds", strings.Join(kinds, ", "))
	}
	for _, kind := range g.Kinds() {
		if icon, ok := g.CustomIcon(kind); ok {
			printDetail("icon %s %s %s", kind, iconArrow, icon)
		}
	}

	if err := g.Validate(); err != nil {
		printError("Validation errors:")
		for _, issue := range splitJoined(err) {
			printDetail("%s", issue)
		}
		return
	}
	printSuccess("No validation errors")
}

// splitJoined unpacks an errors.Join result into its parts.
func splitJoined(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// humanSize formats a byte count using the largest fitting unit.
func humanSize(n int64) string {
	units := []string{"B", "kB", "MB", "GB", "TB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}
