package render

import (
	"strings"
	"testing"

	"github.com/p0dalirius/bhopengraph/pkg/opengraph"
)

func buildGraph(t *testing.T) *opengraph.Graph {
	t.Helper()
	g, err := opengraph.New("Base")
	if err != nil {
		t.Fatal(err)
	}
	bob, err := opengraph.NewNode("123", []string{"Person", "Base"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := bob.SetProperty("displayname", "bob"); err != nil {
		t.Fatal(err)
	}
	alice, err := opengraph.NewNode("234", []string{"Person"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNodes(bob, alice); err != nil {
		t.Fatal(err)
	}
	knows, err := opengraph.NewEdge("Knows", "234", "123", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(knows); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(buildGraph(t), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		`"123" [label="123\n(Person, Base)"];`,
		`"234" [label="234\n(Person)"];`,
		`"234" -> "123" [label="Knows"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "displayname") {
		t.Error("DOT output shows properties without ShowProperties")
	}
}

func TestToDOTShowProperties(t *testing.T) {
	dot := ToDOT(buildGraph(t), Options{ShowProperties: true})
	if !strings.Contains(dot, "displayname: bob") {
		t.Errorf("DOT output missing property line:\n%s", dot)
	}
}

func TestToDOTPropertyPlaceholder(t *testing.T) {
	g := buildGraph(t)
	edge, err := opengraph.NewEdgeBetween("MemberOf",
		opengraph.ByID("123"),
		opengraph.ByProperty("admins@corp.local"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(edge); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"property:admins@corp.local"`) {
		t.Errorf("DOT output missing placeholder node:\n%s", dot)
	}
	if !strings.Contains(dot, `"123" -> "property:admins@corp.local" [label="MemberOf"];`) {
		t.Errorf("DOT output missing edge to placeholder:\n%s", dot)
	}
	// One placeholder per distinct value, even with repeated references.
	if strings.Count(dot, "match by property") != 1 {
		t.Errorf("placeholder declared %d times, want 1:\n%s", strings.Count(dot, "match by property"), dot)
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	g, err := opengraph.New("Base")
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty graph DOT is malformed:\n%s", dot)
	}
}

func TestSVG(t *testing.T) {
	svg, err := SVG(ToDOT(buildGraph(t), Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("SVG output has no <svg element")
	}
}
