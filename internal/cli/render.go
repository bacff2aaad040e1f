package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/p0dalirius/bhopengraph/pkg/render"
)

// Render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderCommand creates the render command, which previews a graph file as
// DOT or SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		format     string
		output     string
		properties bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a DOT or SVG preview of an OpenGraph JSON file",
		Long: `Render an OpenGraph JSON file as a Graphviz preview.

The preview shows every node with its kinds, every edge labelled with its
kind, and property-matched endpoints as dashed placeholders. It is a
debugging aid for collector authors, not part of the ingestion format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(args[0], "")
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, render.Options{ShowProperties: properties})

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				prog := newProgress(c.Logger)
				data, err = render.SVG(dot)
				if err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				prog.done("Rendered SVG")
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}

			if output == "" {
				output = outputName(args[0], format)
			}
			if output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format (dot or svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (derived from input if empty, - for stdout)")
	cmd.Flags().BoolVar(&properties, "properties", false, "include node properties in labels")
	return cmd
}

// outputName derives the preview file name from the input path.
func outputName(input, format string) string {
	base := strings.TrimSuffix(input, ".json")
	return base + "." + format
}
