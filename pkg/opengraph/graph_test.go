package opengraph

import (
	"errors"
	"testing"

	"github.com/p0dalirius/bhopengraph/pkg/schema"
)

func mustNode(t *testing.T, id string, kinds ...string) *Node {
	t.Helper()
	n, err := NewNode(id, kinds, nil)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustEdge(t *testing.T, kind, startID, endID string) *Edge {
	t.Helper()
	e, err := NewEdge(kind, startID, endID, nil)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestNewRequiresSourceKind(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrInvalidSourceKind) {
		t.Fatalf("New(\"\") error = %v, want ErrInvalidSourceKind", err)
	}
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	if g.SourceKind() != "Base" {
		t.Errorf("SourceKind() = %q, want Base", g.SourceKind())
	}
}

func TestGraphAddNode(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}

	if err := g.AddNode(mustNode(t, "123", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(mustNode(t, "123", "Computer")); !errors.Is(err, ErrDuplicateNodeID) {
		t.Fatalf("duplicate AddNode error = %v, want ErrDuplicateNodeID", err)
	}
	// The failed add must not have touched the graph.
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d after failed add, want 1", g.NodeCount())
	}
	n, ok := g.Node("123")
	if !ok || n.PrimaryKind() != "Person" {
		t.Errorf("Node(123) = %v, %v, want original Person node", n, ok)
	}
}

func TestGraphAddEdge(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNodes(mustNode(t, "123", "Person"), mustNode(t, "234", "Person")); err != nil {
		t.Fatal(err)
	}

	if err := g.AddEdge(mustEdge(t, "Knows", "234", "123")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mustEdge(t, "Knows", "234", "999")); !errors.Is(err, ErrUnresolvedNodeReference) {
		t.Fatalf("dangling AddEdge error = %v, want ErrUnresolvedNodeReference", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d after failed add, want 1", g.EdgeCount())
	}

	// Property-matched endpoints are not resolved locally.
	e, err := NewEdgeBetween("MemberOf", ByID("123"), ByProperty("admins@corp.local"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(e); err != nil {
		t.Fatalf("property-matched AddEdge: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestGraphReservedKinds(t *testing.T) {
	g, err := New("Base", WithReservedKinds("Meta", "Migration"))
	if err != nil {
		t.Fatal(err)
	}

	if err := g.AddNode(mustNode(t, "a", "Person", "Meta")); !errors.Is(err, ErrReservedKindName) {
		t.Fatalf("reserved node kind error = %v, want ErrReservedKindName", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d after rejected add, want 0", g.NodeCount())
	}

	if err := g.AddNodes(mustNode(t, "a", "Person"), mustNode(t, "b", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mustEdge(t, "Migration", "a", "b")); !errors.Is(err, ErrReservedKindName) {
		t.Fatalf("reserved edge kind error = %v, want ErrReservedKindName", err)
	}

	// Matching is case-sensitive.
	if err := g.AddEdge(mustEdge(t, "migration", "a", "b")); err != nil {
		t.Fatalf("lowercase kind: %v", err)
	}
}

func TestGraphQueries(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddNodes(
		mustNode(t, "a", "Person", "Base"),
		mustNode(t, "b", "Person"),
		mustNode(t, "c", "Computer"),
	)
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddEdges(
		mustEdge(t, "Knows", "a", "b"),
		mustEdge(t, "AdminTo", "a", "c"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := g.NodesByKind("Person"); len(got) != 2 {
		t.Errorf("NodesByKind(Person) = %d nodes, want 2", len(got))
	}
	if got := g.EdgesByKind("Knows"); len(got) != 1 || got[0].End().Value != "b" {
		t.Errorf("EdgesByKind(Knows) = %v, want one edge to b", got)
	}
	if got := g.EdgesFrom("a"); len(got) != 2 {
		t.Errorf("EdgesFrom(a) = %d edges, want 2", len(got))
	}
	if got := g.EdgesTo("c"); len(got) != 1 || got[0].Kind() != "AdminTo" {
		t.Errorf("EdgesTo(c) = %v, want one AdminTo edge", got)
	}
	if got := g.Kinds(); len(got) != 5 {
		t.Errorf("Kinds() = %v, want 5 distinct kinds", got)
	}
}

func TestGraphIsolatedNodes(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	err = g.AddNodes(
		mustNode(t, "a", "Person"),
		mustNode(t, "b", "Person"),
		mustNode(t, "lonely", "Person"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mustEdge(t, "Knows", "a", "b")); err != nil {
		t.Fatal(err)
	}

	isolated := g.IsolatedNodes()
	if len(isolated) != 1 || isolated[0].ID() != "lonely" {
		t.Errorf("IsolatedNodes() = %v, want [lonely]", isolated)
	}
}

func TestGraphRemoveNodeByID(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNodes(mustNode(t, "a", "Person"), mustNode(t, "b", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mustEdge(t, "Knows", "a", "b")); err != nil {
		t.Fatal(err)
	}

	if !g.RemoveNodeByID("b") {
		t.Fatal("RemoveNodeByID(b) = false, want true")
	}
	if g.RemoveNodeByID("b") {
		t.Error("second RemoveNodeByID(b) = true, want false")
	}
	// The edge referencing b goes with it.
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d after node removal, want 0", g.EdgeCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() after removal: %v", err)
	}
}

func TestGraphValidateReportsDanglingEdges(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNodes(mustNode(t, "a", "Person"), mustNode(t, "b", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(mustEdge(t, "Knows", "a", "b")); err != nil {
		t.Fatal(err)
	}
	// Bypass AddEdge's resolution the way a lenient import does.
	g.addEdgeUnchecked(mustEdge(t, "Knows", "a", "ghost"))

	if err := g.Validate(); err == nil {
		t.Fatal("Validate() = nil, want dangling-reference error")
	}
	dangling := g.IsolatedEdges()
	if len(dangling) != 1 || dangling[0].End().Value != "ghost" {
		t.Errorf("IsolatedEdges() = %v, want the ghost edge", dangling)
	}
}

func TestGraphClear(t *testing.T) {
	g, err := New("Base", WithReservedKinds("Meta"))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(mustNode(t, "a", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCustomIcon("Person", "user"); err != nil {
		t.Fatal(err)
	}

	g.Clear()
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("counts after Clear = %d/%d, want 0/0", g.NodeCount(), g.EdgeCount())
	}
	if _, ok := g.CustomIcon("Person"); ok {
		t.Error("CustomIcon(Person) survived Clear")
	}
	// Schema configuration survives.
	if err := g.AddNode(mustNode(t, "a", "Meta")); !errors.Is(err, ErrReservedKindName) {
		t.Errorf("reserved kind after Clear: error = %v, want ErrReservedKindName", err)
	}
}

func TestGraphSetCustomIcon(t *testing.T) {
	g, err := New("Base")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetCustomIcon("Person", "user"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("SetCustomIcon on unused kind error = %v, want ErrUnknownKind", err)
	}

	if err := g.AddNode(mustNode(t, "a", "Person")); err != nil {
		t.Fatal(err)
	}
	if err := g.SetCustomIcon("Person", "user"); err != nil {
		t.Fatal(err)
	}
	if icon, ok := g.CustomIcon("Person"); !ok || icon != "user" {
		t.Errorf("CustomIcon(Person) = %q, %v, want user, true", icon, ok)
	}

	// Overwrite keeps the registration, replaces the value.
	if err := g.SetCustomIcon("Person", "user-circle"); err != nil {
		t.Fatal(err)
	}
	if icon, _ := g.CustomIcon("Person"); icon != "user-circle" {
		t.Errorf("CustomIcon(Person) = %q after overwrite, want user-circle", icon)
	}
}

func TestGraphWithSchema(t *testing.T) {
	cfg := &schema.Config{
		ReservedKinds: []string{"Meta"},
		Icons:         map[string]string{"Person": "user"},
	}
	g, err := New("Base", WithSchema(cfg))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(mustNode(t, "a", "Meta")); !errors.Is(err, ErrReservedKindName) {
		t.Errorf("schema reserved kind: error = %v, want ErrReservedKindName", err)
	}
}
