// Package pkg provides the core libraries for building BloodHound OpenGraph
// documents.
//
// # Overview
//
// bhopengraph lets custom data collectors assemble nodes and edges in memory
// and serialize them to the OpenGraph JSON format that BloodHound ingests.
// The pkg directory is organized into:
//
//  1. [opengraph] - Domain logic (nodes, edges, property bags, the graph
//     aggregate, JSON export and import)
//  2. [schema] - Injectable schema configuration (reserved kinds, icon presets)
//  3. [render] - Graphviz DOT/SVG previews of a graph, for debugging
//  4. [observability] - Lifecycle hooks for metrics and tracing
//  5. [buildinfo] - Build-time version metadata
//
// # Quick Start
//
// Build a graph and export it:
//
//	import "github.com/p0dalirius/bhopengraph/pkg/opengraph"
//
//	g, _ := opengraph.New("Base")
//
//	bob, _ := opengraph.NewNode("123", []string{"Person", "Base"}, nil)
//	bob.SetProperty("displayname", "bob")
//	alice, _ := opengraph.NewNode("234", []string{"Person", "Base"}, nil)
//	alice.SetProperty("displayname", "alice")
//	g.AddNodes(bob, alice)
//
//	knows, _ := opengraph.NewEdge("Knows", alice.ID(), bob.ID(), nil)
//	g.AddEdge(knows)
//
//	g.ExportToFile("people.json", 2)
//
// The resulting file uploads directly through the BloodHound ingest API or
// the web UI's file upload.
//
// # Main Packages
//
// [opengraph] - The document model. Nodes carry a unique id, up to three kind
// labels, and a flat property bag; edges are directed, typed, and reference
// their endpoints by node id or by property value. Graph enforces the schema
// rules at add time and produces deterministic JSON.
//
// [schema] - Reserved kind names and per-kind icon presets, loaded from TOML
// or assembled in code. Kept injectable because the platform's schema evolves
// independently of this library.
//
// [render] - Converts a graph to Graphviz DOT and renders SVG previews so a
// collector author can eyeball a document before uploading it.
//
// [observability] - A hook interface with no-op defaults that embedding
// applications can replace to observe validation and export events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
//
// [opengraph]: https://pkg.go.dev/github.com/p0dalirius/bhopengraph/pkg/opengraph
// [schema]: https://pkg.go.dev/github.com/p0dalirius/bhopengraph/pkg/schema
// [render]: https://pkg.go.dev/github.com/p0dalirius/bhopengraph/pkg/render
// [observability]: https://pkg.go.dev/github.com/p0dalirius/bhopengraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/p0dalirius/bhopengraph/pkg/buildinfo
package pkg
