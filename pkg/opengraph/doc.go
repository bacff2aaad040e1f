// Package opengraph builds in-memory graphs of nodes, edges, and properties
// and serializes them into the BloodHound OpenGraph JSON format for ingestion
// by the graph platform.
//
// The package enforces the schema's consistency rules while the graph is
// built - unique node ids, well-formed kinds and endpoint references,
// schema-representable property values - and projects the result into the
// exact nested document shape the platform expects, including match_by
// endpoint resolution semantics and metadata/icon embedding.
//
// # Building a graph
//
//	g, _ := opengraph.New("Base")
//
//	props, _ := opengraph.PropertyMap(map[string]any{
//	    "displayname": "bob",
//	    "objectid":    "123",
//	})
//	bob, _ := opengraph.NewNode("123", []string{"Person", "Base"}, props)
//	_ = g.AddNode(bob)
//
//	knows, _ := opengraph.NewEdge("Knows", "123", "234", nil)
//	if err := g.AddEdge(knows); err != nil {
//	    // id-matched endpoints must resolve against already-added nodes
//	}
//
//	data, _ := g.JSON(2)
//
// Edges may also reference nodes the local graph does not contain, using
// property-matched endpoints resolved by the platform:
//
//	e, _ := opengraph.NewEdgeBetween("MemberOf",
//	    opengraph.ByID("123"),
//	    opengraph.ByProperty("DOMAIN ADMINS@CORP.LOCAL"), nil)
//
// # Export
//
// [Graph.ExportToFile] serializes fully in memory and writes atomically, so a
// failed export never leaves a truncated file. The produced document is what
// a caller-owned upload step hands to the platform's ingestion endpoint; no
// transport lives in this package.
//
// All operations are synchronous and single-threaded; wrap a Graph in your
// own locking if you must share it across goroutines.
package opengraph
