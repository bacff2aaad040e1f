// Package render turns an OpenGraph into Graphviz DOT and SVG previews.
//
// This is a debugging aid for collector authors: it shows what a graph file
// will look like before it is uploaded, it is not part of the ingestion
// format. Layout is delegated entirely to Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/p0dalirius/bhopengraph/pkg/opengraph"
)

// Options configures DOT generation.
type Options struct {
	// ShowProperties includes each node's property keys in its label.
	// When false, only the id and kinds are shown.
	ShowProperties bool
}

// ToDOT converts a graph to Graphviz DOT format. Each node becomes a rounded
// box labelled with its id and kinds; each edge becomes a labelled arrow.
// Property-matched endpoints have no local node, so they are rendered as
// dashed placeholder boxes.
func ToDOT(g *opengraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID(), nodeLabel(n, opts.ShowProperties))
	}

	placeholders := make(map[string]bool)
	for _, e := range g.Edges() {
		for _, ep := range []opengraph.Endpoint{e.Start(), e.End()} {
			if ep.MatchBy != opengraph.MatchByProperty {
				continue
			}
			id := placeholderID(ep)
			if !placeholders[id] {
				placeholders[id] = true
				label := ep.Value + "\nmatch by property"
				fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", id, label)
			}
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", endpointID(e.Start()), endpointID(e.End()), e.Kind())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n *opengraph.Node, showProps bool) string {
	label := n.ID() + "\n(" + strings.Join(n.Kinds(), ", ") + ")"
	if showProps {
		for _, key := range n.Properties().Keys() {
			v, _ := n.Properties().Get(key)
			label += fmt.Sprintf("\n%s: %v", key, v)
		}
	}
	return label
}

func endpointID(ep opengraph.Endpoint) string {
	if ep.MatchBy == opengraph.MatchByProperty {
		return placeholderID(ep)
	}
	return ep.Value
}

// placeholderID namespaces property-matched endpoints so they cannot collide
// with a real node id.
func placeholderID(ep opengraph.Endpoint) string {
	return "property:" + ep.Value
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
