package opengraph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/p0dalirius/bhopengraph/pkg/observability"
)

// documentJSON is the top-level wire shape. Field order fixes the output key
// order: graph, then metadata.
type documentJSON struct {
	Graph    graphJSON    `json:"graph"`
	Metadata metadataJSON `json:"metadata"`
}

type graphJSON struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

type metadataJSON struct {
	SourceKind string                                  `json:"source_kind"`
	Icons      *orderedmap.OrderedMap[string, string] `json:"icons,omitempty"`
}

// document assembles the wire representation of the current graph state.
func (g *Graph) document() documentJSON {
	doc := documentJSON{
		Graph: graphJSON{
			Nodes: g.nodes,
			Edges: g.edges,
		},
		Metadata: metadataJSON{SourceKind: g.sourceKind},
	}
	if doc.Graph.Nodes == nil {
		doc.Graph.Nodes = []*Node{}
	}
	if doc.Graph.Edges == nil {
		doc.Graph.Edges = []*Edge{}
	}
	if icons := g.effectiveIcons(); icons.Len() > 0 {
		doc.Metadata.Icons = icons
	}
	return doc
}

// effectiveIcons merges schema icon presets with explicitly registered icons
// for every kind currently in use. Presets come first, in order of the kind's
// first appearance in the graph; explicit icons override presets without
// losing that position, and explicit icons for preset-less kinds follow in
// registration order.
func (g *Graph) effectiveIcons() *orderedmap.OrderedMap[string, string] {
	icons := orderedmap.New[string, string]()
	for _, kind := range g.Kinds() {
		if icon, ok := g.schema.Icon(kind); ok {
			icons.Set(kind, icon)
		}
	}
	for pair := g.icons.Oldest(); pair != nil; pair = pair.Next() {
		if g.kindInUse(pair.Key) {
			icons.Set(pair.Key, pair.Value)
		}
	}
	return icons
}

// WriteJSON encodes the graph as an OpenGraph JSON document and writes it to
// w. indent <= 0 produces compact output; indent > 0 pretty-prints with that
// many spaces per level. The output ends with a newline and is byte-identical
// across calls on an unmutated graph.
func (g *Graph) WriteJSON(w io.Writer, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(g.document()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// JSON returns the graph as an OpenGraph JSON document. See [Graph.WriteJSON]
// for the indent semantics.
func (g *Graph) JSON(indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.WriteJSON(&buf, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportToFile serializes the graph fully in memory, writes it to a temporary
// file next to path, and atomically renames it into place, so a failed export
// never leaves a partial file behind. Filesystem failures are returned as an
// *ExportError wrapping the cause; serialization failures propagate as-is.
func (g *Graph) ExportToFile(path string, indent int) error {
	start := time.Now()
	observability.Graph().OnExportStart(path)

	data, err := g.JSON(indent)
	if err != nil {
		observability.Graph().OnExportComplete(path, 0, time.Since(start), err)
		return err
	}

	err = atomicWrite(path, data)
	if err != nil {
		err = &ExportError{Path: path, Err: err}
		observability.Graph().OnExportComplete(path, 0, time.Since(start), err)
		return err
	}

	observability.Graph().OnExportComplete(path, len(data), time.Since(start), nil)
	return nil
}

// atomicWrite writes data to a temp file in path's directory and renames it
// into place. The temp file is removed on any failure.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bhopengraph-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
