package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/p0dalirius/bhopengraph/pkg/opengraph"
)

// sampleCommand creates the sample command, which emits a ready-to-ingest
// graph document for testing pipelines.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		output string
		nodes  int
		indent int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample OpenGraph JSON document",
		Long: `Generate a sample OpenGraph JSON document.

By default this reproduces the minimal working example from the BloodHound
OpenGraph documentation: two Person nodes connected by a Knows edge. With
--nodes N it instead generates a synthetic chain of N Person nodes with
random ids, useful for exercising ingestion at larger sizes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   *opengraph.Graph
				err error
			)
			if nodes > 0 {
				g, err = syntheticGraph(nodes)
			} else {
				g, err = minimalGraph()
			}
			if err != nil {
				return err
			}

			if output == "" {
				return g.WriteJSON(os.Stdout, indent)
			}
			if err := g.ExportToFile(output, indent); err != nil {
				return err
			}
			printSuccess("Wrote sample graph (%d nodes, %d edges)", g.NodeCount(), g.EdgeCount())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "generate a synthetic graph with this many nodes")
	cmd.Flags().IntVar(&indent, "indent", 2, "indentation width (0 for compact)")
	return cmd
}

// minimalGraph builds the minimal working example from the BloodHound
// OpenGraph documentation.
func minimalGraph() (*opengraph.Graph, error) {
	g, err := opengraph.New("Base")
	if err != nil {
		return nil, err
	}

	bobProps, err := opengraph.PropertyMap(map[string]any{
		"displayname": "bob",
		"objectid":    "123",
		"name":        "BOB",
	})
	if err != nil {
		return nil, err
	}
	bob, err := opengraph.NewNode("123", []string{"Person", "Base"}, bobProps)
	if err != nil {
		return nil, err
	}

	aliceProps, err := opengraph.PropertyMap(map[string]any{
		"displayname": "alice",
		"objectid":    "234",
		"name":        "ALICE",
	})
	if err != nil {
		return nil, err
	}
	alice, err := opengraph.NewNode("234", []string{"Person", "Base"}, aliceProps)
	if err != nil {
		return nil, err
	}

	if err := g.AddNodes(bob, alice); err != nil {
		return nil, err
	}

	knows, err := opengraph.NewEdge("Knows", alice.ID(), bob.ID(), nil)
	if err != nil {
		return nil, err
	}
	return g, g.AddEdge(knows)
}

// syntheticGraph builds a chain of n Person nodes with random ids.
func syntheticGraph(n int) (*opengraph.Graph, error) {
	g, err := opengraph.New("Base")
	if err != nil {
		return nil, err
	}

	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString()
		props, err := opengraph.PropertyMap(map[string]any{
			"name":     fmt.Sprintf("PERSON-%04d", i),
			"objectid": ids[i],
		})
		if err != nil {
			return nil, err
		}
		node, err := opengraph.NewNode(ids[i], []string{"Person", "Base"}, props)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	for i := 1; i < n; i++ {
		edge, err := opengraph.NewEdge("Knows", ids[i-1], ids[i], nil)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(edge); err != nil {
			return nil, err
		}
	}
	return g, nil
}
