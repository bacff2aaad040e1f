package opengraph

import (
	"errors"
	"fmt"
	"slices"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/p0dalirius/bhopengraph/pkg/observability"
	"github.com/p0dalirius/bhopengraph/pkg/schema"
)

// Graph is the aggregate root: it owns a set of nodes and edges, the
// source-kind namespace label, and optional per-kind display icons, and it
// produces the canonical OpenGraph JSON document.
//
// Adds are all-or-nothing: a failed AddNode or AddEdge leaves the graph
// untouched. Serialization is a pure read and may be repeated; output is
// byte-identical as long as the graph is not mutated in between.
//
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	sourceKind string
	nodes      []*Node
	nodeByID   map[string]*Node
	edges      []*Edge
	icons      *orderedmap.OrderedMap[string, string]
	schema     *schema.Config
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithReservedKinds adds kind names that AddNode and AddEdge reject. The
// reserved set belongs to the ingesting platform's schema and may evolve
// independently of this library, which is why it is injected rather than
// hardcoded.
func WithReservedKinds(kinds ...string) Option {
	return func(g *Graph) {
		g.schema.ReservedKinds = append(g.schema.ReservedKinds, kinds...)
	}
}

// WithSchema applies a full schema configuration: reserved kinds plus icon
// presets. Presets attach to kinds as they come into use and are overridden
// by explicit [Graph.SetCustomIcon] calls.
func WithSchema(cfg *schema.Config) Option {
	return func(g *Graph) {
		if cfg != nil {
			g.schema = cfg
		}
	}
}

// New creates an empty graph namespaced by sourceKind. Returns
// ErrInvalidSourceKind if sourceKind is empty.
func New(sourceKind string, opts ...Option) (*Graph, error) {
	if sourceKind == "" {
		return nil, ErrInvalidSourceKind
	}
	g := &Graph{
		sourceKind: sourceKind,
		nodeByID:   make(map[string]*Node),
		icons:      orderedmap.New[string, string](),
		schema:     schema.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// SourceKind returns the namespace label embedded in output metadata.
func (g *Graph) SourceKind() string { return g.sourceKind }

// AddNode registers a node. Returns ErrDuplicateNodeID if a node with the
// same id is already present, or ErrReservedKindName if any of the node's
// kinds is reserved. On error the graph is unchanged.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvalidNodeDefinition)
	}
	if _, exists := g.nodeByID[n.id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.id)
	}
	for _, kind := range n.kinds {
		if g.schema.IsReserved(kind) {
			return fmt.Errorf("%w: %q", ErrReservedKindName, kind)
		}
	}
	g.nodes = append(g.nodes, n)
	g.nodeByID[n.id] = n
	return nil
}

// AddNodes registers nodes in order, stopping at the first failure.
func (g *Graph) AddNodes(nodes ...*Node) error {
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge registers an edge. Id-matched endpoints must resolve against nodes
// already in the graph (fail-fast - add nodes before the edges that reference
// them); the error is ErrUnresolvedNodeReference otherwise. Property-matched
// endpoints are resolved by the ingesting platform and are always accepted.
// Returns ErrReservedKindName if the edge kind is reserved. On error the
// graph is unchanged.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return fmt.Errorf("%w: nil edge", ErrInvalidEdgeDefinition)
	}
	if g.schema.IsReserved(e.kind) {
		return fmt.Errorf("%w: %q", ErrReservedKindName, e.kind)
	}
	if err := g.resolve(e.start, "start"); err != nil {
		return err
	}
	if err := g.resolve(e.end, "end"); err != nil {
		return err
	}
	g.edges = append(g.edges, e)
	return nil
}

// AddEdges registers edges in order, stopping at the first failure.
func (g *Graph) AddEdges(edges ...*Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// addEdgeUnchecked appends an edge without endpoint resolution. Used by the
// import path, where dangling id references are reported by Validate instead
// of rejected.
func (g *Graph) addEdgeUnchecked(e *Edge) {
	g.edges = append(g.edges, e)
}

func (g *Graph) resolve(ep Endpoint, which string) error {
	if ep.MatchBy != MatchByID {
		return nil
	}
	if _, ok := g.nodeByID[ep.Value]; !ok {
		return fmt.Errorf("%w: %s node %q", ErrUnresolvedNodeReference, which, ep.Value)
	}
	return nil
}

// Node returns the node with the given id and whether it exists.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodeByID[id]
	return n, ok
}

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes
// are not.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Edges returns the edges in insertion order. The slice is a copy; the edges
// are not.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodesByKind returns the nodes carrying the kind, in insertion order.
func (g *Graph) NodesByKind(kind string) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.HasKind(kind) {
			out = append(out, n)
		}
	}
	return out
}

// EdgesByKind returns the edges of the given kind, in insertion order.
func (g *Graph) EdgesByKind(kind string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// EdgesFrom returns the edges whose start endpoint references the node id.
func (g *Graph) EdgesFrom(id string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.start.MatchBy == MatchByID && e.start.Value == id {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns the edges whose end endpoint references the node id.
func (g *Graph) EdgesTo(id string) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.end.MatchBy == MatchByID && e.end.Value == id {
			out = append(out, e)
		}
	}
	return out
}

// IsolatedNodes returns the nodes no edge references by id. Property-matched
// endpoints cannot be resolved locally, so a node referenced only that way
// still counts as isolated here.
func (g *Graph) IsolatedNodes() []*Node {
	referenced := make(map[string]struct{}, len(g.edges)*2)
	for _, e := range g.edges {
		if e.start.MatchBy == MatchByID {
			referenced[e.start.Value] = struct{}{}
		}
		if e.end.MatchBy == MatchByID {
			referenced[e.end.Value] = struct{}{}
		}
	}
	var out []*Node
	for _, n := range g.nodes {
		if _, ok := referenced[n.id]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// IsolatedEdges returns the edges with an id-matched endpoint that does not
// resolve against the current node set. These can appear after
// RemoveNodeByID of a property-matched neighbour or a lenient import;
// Validate reports them as errors.
func (g *Graph) IsolatedEdges() []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if g.dangling(e) {
			out = append(out, e)
		}
	}
	return out
}

func (g *Graph) dangling(e *Edge) bool {
	if e.start.MatchBy == MatchByID {
		if _, ok := g.nodeByID[e.start.Value]; !ok {
			return true
		}
	}
	if e.end.MatchBy == MatchByID {
		if _, ok := g.nodeByID[e.end.Value]; !ok {
			return true
		}
	}
	return false
}

// RemoveNodeByID removes a node and every edge referencing it by id. Reports
// whether the node existed. Any icon registered for a kind that thereby falls
// out of use is kept; it simply stops appearing in output.
func (g *Graph) RemoveNodeByID(id string) bool {
	if _, ok := g.nodeByID[id]; !ok {
		return false
	}
	delete(g.nodeByID, id)
	g.nodes = slices.DeleteFunc(g.nodes, func(n *Node) bool { return n.id == id })
	g.edges = slices.DeleteFunc(g.edges, func(e *Edge) bool {
		return (e.start.MatchBy == MatchByID && e.start.Value == id) ||
			(e.end.MatchBy == MatchByID && e.end.Value == id)
	})
	return true
}

// Clear removes all nodes, edges, and custom icons. The source kind and
// schema configuration are kept.
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.nodeByID = make(map[string]*Node)
	g.icons = orderedmap.New[string, string]()
}

// Kinds returns every kind currently in use, node kinds first in order of
// first appearance, then edge kinds.
func (g *Graph) Kinds() []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	for _, n := range g.nodes {
		for _, k := range n.kinds {
			add(k)
		}
	}
	for _, e := range g.edges {
		add(e.kind)
	}
	return out
}

// kindInUse reports whether any node or edge carries the kind.
func (g *Graph) kindInUse(kind string) bool {
	for _, n := range g.nodes {
		if n.HasKind(kind) {
			return true
		}
	}
	for _, e := range g.edges {
		if e.kind == kind {
			return true
		}
	}
	return false
}

// SetCustomIcon registers a display icon for a kind. The kind must already be
// in use by a node or edge; otherwise ErrUnknownKind is returned. Registering
// twice overwrites the icon but keeps the original position in output.
func (g *Graph) SetCustomIcon(kind, icon string) error {
	if !g.kindInUse(kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	g.icons.Set(kind, icon)
	return nil
}

// CustomIcon returns the explicitly registered icon for a kind, if any. Icon
// presets from the schema configuration are not reported here; they are
// merged in at serialization time.
func (g *Graph) CustomIcon(kind string) (string, bool) {
	return g.icons.Get(kind)
}

// Validate checks the graph for dangling id references, which can only be
// introduced by RemoveNodeByID or a lenient import - AddEdge rejects them up
// front. Returns nil when the graph is consistent, otherwise an error joining
// one entry per dangling endpoint.
func (g *Graph) Validate() error {
	start := time.Now()
	var errs []error
	for _, e := range g.edges {
		if e.start.MatchBy == MatchByID {
			if _, ok := g.nodeByID[e.start.Value]; !ok {
				errs = append(errs, fmt.Errorf("edge %q references unknown start node %q", e.kind, e.start.Value))
			}
		}
		if e.end.MatchBy == MatchByID {
			if _, ok := g.nodeByID[e.end.Value]; !ok {
				errs = append(errs, fmt.Errorf("edge %q references unknown end node %q", e.kind, e.end.Value))
			}
		}
	}
	observability.Graph().OnValidateComplete(len(errs), time.Since(start))
	return errors.Join(errs...)
}
