package opengraph

import (
	"encoding/json"
	"fmt"
)

// MatchBy selects how the ingesting platform resolves an edge endpoint to a
// node in its stored graph.
type MatchBy string

const (
	// MatchByID resolves the endpoint against a node id.
	MatchByID MatchBy = "id"

	// MatchByProperty resolves the endpoint against a node property value.
	// Resolution happens on the platform side; this library only checks that
	// the reference is well-formed.
	MatchByProperty MatchBy = "property"
)

// Endpoint is one end of an edge: a lookup value and the resolution mode.
type Endpoint struct {
	Value   string  `json:"value"`
	MatchBy MatchBy `json:"match_by"`
}

// ByID builds an id-matched endpoint.
func ByID(nodeID string) Endpoint { return Endpoint{Value: nodeID, MatchBy: MatchByID} }

// ByProperty builds a property-matched endpoint. The value is matched against
// node properties by the ingesting platform; edges with such endpoints may
// reference nodes that are not part of the local graph.
func ByProperty(value string) Endpoint { return Endpoint{Value: value, MatchBy: MatchByProperty} }

func (e Endpoint) validate() error {
	if e.Value == "" {
		return fmt.Errorf("%w: empty endpoint value", ErrInvalidEdgeDefinition)
	}
	switch e.MatchBy {
	case MatchByID, MatchByProperty:
		return nil
	}
	return fmt.Errorf("%w: match_by %q is not %q or %q",
		ErrInvalidEdgeDefinition, e.MatchBy, MatchByID, MatchByProperty)
}

// Edge is a directed, typed relationship between two endpoint references.
// Edges are always one-way; model a mutual relationship as two edges.
type Edge struct {
	kind       string
	start      Endpoint
	end        Endpoint
	properties *Properties
}

// NewEdge creates an edge between two nodes referenced by id. This is the
// common case; use [NewEdgeBetween] for property-matched endpoints.
func NewEdge(kind, startID, endID string, props *Properties) (*Edge, error) {
	return NewEdgeBetween(kind, ByID(startID), ByID(endID), props)
}

// NewEdgeBetween creates an edge with explicit endpoint references. props may
// be nil. Returns ErrInvalidEdgeDefinition if the kind is empty or either
// endpoint is malformed.
func NewEdgeBetween(kind string, start, end Endpoint, props *Properties) (*Edge, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: empty kind", ErrInvalidEdgeDefinition)
	}
	if err := start.validate(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := end.validate(); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	if props == nil {
		props = NewProperties()
	}
	return &Edge{kind: kind, start: start, end: end, properties: props}, nil
}

// Kind returns the relationship type.
func (e *Edge) Kind() string { return e.kind }

// Start returns the source endpoint reference.
func (e *Edge) Start() Endpoint { return e.start }

// End returns the destination endpoint reference.
func (e *Edge) End() Endpoint { return e.end }

// Properties returns the edge's property bag.
func (e *Edge) Properties() *Properties { return e.properties }

// SetProperty stores a property on the edge. See [Properties.Set] for the
// value rules.
func (e *Edge) SetProperty(key string, value any) error {
	return e.properties.Set(key, value)
}

// Property returns a property value and whether it exists.
func (e *Edge) Property(key string) (any, bool) { return e.properties.Get(key) }

// RemoveProperty deletes a property if present.
func (e *Edge) RemoveProperty(key string) { e.properties.Remove(key) }

// edgeJSON is the wire shape of an edge. The properties key is omitted
// entirely when the bag is empty, per the schema's optional-field convention.
type edgeJSON struct {
	Kind       string      `json:"kind"`
	Start      Endpoint    `json:"start"`
	End        Endpoint    `json:"end"`
	Properties *Properties `json:"properties,omitempty"`
}

// MarshalJSON encodes the edge in OpenGraph wire form.
func (e *Edge) MarshalJSON() ([]byte, error) {
	out := edgeJSON{Kind: e.kind, Start: e.start, End: e.end}
	if e.properties.Len() > 0 {
		out.Properties = e.properties
	}
	return json.Marshal(out)
}
