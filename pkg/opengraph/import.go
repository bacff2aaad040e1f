package opengraph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// importDocument mirrors documentJSON with decode-friendly field types.
type importDocument struct {
	Graph struct {
		Nodes []importNode `json:"nodes"`
		Edges []importEdge `json:"edges"`
	} `json:"graph"`
	Metadata struct {
		SourceKind string                                  `json:"source_kind"`
		Icons      *orderedmap.OrderedMap[string, string] `json:"icons"`
	} `json:"metadata"`
}

type importNode struct {
	ID         string      `json:"id"`
	Kinds      []string    `json:"kinds"`
	Properties *Properties `json:"properties"`
}

type importEdge struct {
	Kind       string      `json:"kind"`
	Start      Endpoint    `json:"start"`
	End        Endpoint    `json:"end"`
	Properties *Properties `json:"properties"`
}

// ReadJSON decodes an OpenGraph JSON document from r into a Graph.
//
// Nodes go through full construction-time validation, and a duplicate id is
// an error. Edges are validated structurally (kind, endpoint shape) but their
// id references are NOT resolved: an exported graph may legitimately carry
// property-matched endpoints or references into another collector's graph,
// so dangling ids survive the import and are reported by [Graph.Validate].
//
// The source kind is taken from the document's metadata and is required,
// matching what this library itself exports.
func ReadJSON(r io.Reader, opts ...Option) (*Graph, error) {
	var doc importDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g, err := New(doc.Metadata.SourceKind, opts...)
	if err != nil {
		return nil, err
	}

	for _, n := range doc.Graph.Nodes {
		node, err := NewNode(n.ID, n.Kinds, n.Properties)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}

	for _, e := range doc.Graph.Edges {
		edge, err := NewEdgeBetween(e.Kind, e.Start, e.End, e.Properties)
		if err != nil {
			return nil, fmt.Errorf("edge %q %s->%s: %w", e.Kind, e.Start.Value, e.End.Value, err)
		}
		g.addEdgeUnchecked(edge)
	}

	if doc.Metadata.Icons != nil {
		for pair := doc.Metadata.Icons.Oldest(); pair != nil; pair = pair.Next() {
			g.icons.Set(pair.Key, pair.Value)
		}
	}

	return g, nil
}

// ImportFromFile reads an OpenGraph JSON document from path. See [ReadJSON]
// for the validation semantics.
func ImportFromFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
