package opengraph

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MaxKinds is the schema cap on the number of kind labels per node. The first
// kind is the node's primary kind and drives icon selection in the graph UI.
const MaxKinds = 3

// Node is a vertex in an OpenGraph: a unique id, one to three kind labels, and
// a property bag. Kind membership behaves like a set, but the order of first
// appearance is preserved because the primary (first) kind is significant for
// display.
//
// A node is standalone until passed to [Graph.AddNode], which takes ownership
// for serialization purposes. The id is fixed at construction; duplicate
// detection relies on it never changing.
type Node struct {
	id         string
	kinds      []string
	properties *Properties
}

// NewNode creates a node. kinds must contain between one and [MaxKinds]
// non-empty labels; duplicates are collapsed, keeping first appearance.
// props may be nil, in which case the node starts with an empty bag.
// Returns ErrInvalidNodeDefinition on a malformed id or kinds.
func NewNode(id string, kinds []string, props *Properties) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidNodeDefinition)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: node %q has no kinds", ErrInvalidNodeDefinition, id)
	}
	deduped := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k == "" {
			return nil, fmt.Errorf("%w: node %q has an empty kind", ErrInvalidNodeDefinition, id)
		}
		if !slices.Contains(deduped, k) {
			deduped = append(deduped, k)
		}
	}
	if len(deduped) > MaxKinds {
		return nil, fmt.Errorf("%w: node %q has %d kinds, schema allows at most %d",
			ErrInvalidNodeDefinition, id, len(deduped), MaxKinds)
	}
	if props == nil {
		props = NewProperties()
	}
	return &Node{id: id, kinds: deduped, properties: props}, nil
}

// ID returns the node's unique identifier.
func (n *Node) ID() string { return n.id }

// Kinds returns a copy of the kind labels in display order.
func (n *Node) Kinds() []string { return slices.Clone(n.kinds) }

// PrimaryKind returns the first kind label.
func (n *Node) PrimaryKind() string { return n.kinds[0] }

// HasKind reports whether the node carries the kind.
func (n *Node) HasKind(kind string) bool { return slices.Contains(n.kinds, kind) }

// AddKind appends a kind label. Adding a kind the node already has is a
// no-op. Returns ErrInvalidNodeDefinition if the kind is empty or the node is
// already at [MaxKinds].
func (n *Node) AddKind(kind string) error {
	if kind == "" {
		return fmt.Errorf("%w: empty kind", ErrInvalidNodeDefinition)
	}
	if n.HasKind(kind) {
		return nil
	}
	if len(n.kinds) >= MaxKinds {
		return fmt.Errorf("%w: node %q already has %d kinds", ErrInvalidNodeDefinition, n.id, MaxKinds)
	}
	n.kinds = append(n.kinds, kind)
	return nil
}

// RemoveKind drops a kind label if present. Removing an absent kind is a
// no-op. Returns ErrInvalidNodeDefinition when the removal would leave the
// node without any kind; every node carries at least one.
func (n *Node) RemoveKind(kind string) error {
	if !n.HasKind(kind) {
		return nil
	}
	if len(n.kinds) == 1 {
		return fmt.Errorf("%w: node %q must keep at least one kind", ErrInvalidNodeDefinition, n.id)
	}
	n.kinds = slices.DeleteFunc(n.kinds, func(k string) bool { return k == kind })
	return nil
}

// Properties returns the node's property bag. The bag is owned by the node;
// mutations through it are visible in serialization.
func (n *Node) Properties() *Properties { return n.properties }

// SetProperty stores a property on the node. See [Properties.Set] for the
// value rules.
func (n *Node) SetProperty(key string, value any) error {
	return n.properties.Set(key, value)
}

// Property returns a property value and whether it exists.
func (n *Node) Property(key string) (any, bool) { return n.properties.Get(key) }

// RemoveProperty deletes a property if present.
func (n *Node) RemoveProperty(key string) { n.properties.Remove(key) }

// nodeJSON is the wire shape of a node. Field order fixes the output key
// order: id, kinds, properties. The properties key is always present, {} when
// empty.
type nodeJSON struct {
	ID         string      `json:"id"`
	Kinds      []string    `json:"kinds"`
	Properties *Properties `json:"properties"`
}

// MarshalJSON encodes the node in OpenGraph wire form.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{ID: n.id, Kinds: n.kinds, Properties: n.properties})
}
