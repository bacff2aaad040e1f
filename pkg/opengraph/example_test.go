package opengraph_test

import (
	"fmt"
	"os"

	"github.com/p0dalirius/bhopengraph/pkg/opengraph"
)

func Example() {
	g, err := opengraph.New("Base")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	bob, _ := opengraph.NewNode("123", []string{"Person", "Base"}, nil)
	bob.SetProperty("displayname", "bob")
	alice, _ := opengraph.NewNode("234", []string{"Person", "Base"}, nil)
	alice.SetProperty("displayname", "alice")

	if err := g.AddNodes(bob, alice); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	knows, _ := opengraph.NewEdge("Knows", alice.ID(), bob.ID(), nil)
	if err := g.AddEdge(knows); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if err := g.WriteJSON(os.Stdout, 0); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	// Output:
	// {"graph":{"nodes":[{"id":"123","kinds":["Person","Base"],"properties":{"displayname":"bob"}},{"id":"234","kinds":["Person","Base"],"properties":{"displayname":"alice"}}],"edges":[{"kind":"Knows","start":{"value":"234","match_by":"id"},"end":{"value":"123","match_by":"id"}}]},"metadata":{"source_kind":"Base"}}
}

func ExampleGraph_AddEdge_propertyMatched() {
	g, _ := opengraph.New("Base")
	user, _ := opengraph.NewNode("u-1", []string{"User"}, nil)
	g.AddNode(user)

	// The group lives in another collector's graph; reference it by a
	// property value and let the platform resolve it at ingest time.
	edge, _ := opengraph.NewEdgeBetween("MemberOf",
		opengraph.ByID("u-1"),
		opengraph.ByProperty("admins@corp.local"), nil)
	if err := g.AddEdge(edge); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.EdgeCount())
	// Output: 1
}
