package opengraph

import "errors"

var (
	// ErrInvalidPropertyKey is returned by [Properties.Set] when the key is
	// empty. Property keys must be non-empty strings.
	ErrInvalidPropertyKey = errors.New("property key must not be empty")

	// ErrInvalidValueKind is returned by [Properties.Set] when the value is not
	// representable in the OpenGraph wire format. Allowed values are JSON
	// scalars (string, number, boolean, null) and homogeneous arrays of one
	// scalar type. Nested objects and mixed arrays are rejected.
	ErrInvalidValueKind = errors.New("property value is not an OpenGraph scalar or homogeneous array")

	// ErrInvalidNodeDefinition is returned by [NewNode] and [Node.AddKind] when
	// a required field is malformed: empty id, no kinds, an empty kind string,
	// or more kinds than the schema allows (see [MaxKinds]).
	ErrInvalidNodeDefinition = errors.New("invalid node definition")

	// ErrInvalidEdgeDefinition is returned by [NewEdge] and [NewEdgeBetween]
	// when the kind is empty or an endpoint is malformed (empty value, or a
	// match_by outside {"id", "property"}).
	ErrInvalidEdgeDefinition = errors.New("invalid edge definition")

	// ErrInvalidSourceKind is returned by [New] when the source kind is empty.
	// Every graph is namespaced by the data source that produced it.
	ErrInvalidSourceKind = errors.New("source kind must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same id already exists in the graph. Node ids are unique graph-wide.
	ErrDuplicateNodeID = errors.New("duplicate node id")

	// ErrUnresolvedNodeReference is returned by [Graph.AddEdge] when an
	// id-matched endpoint does not resolve against the nodes already added.
	// Property-matched endpoints are resolved by the ingesting platform and
	// never trigger this error.
	ErrUnresolvedNodeReference = errors.New("unresolved node reference")

	// ErrReservedKindName is returned by [Graph.AddNode] and [Graph.AddEdge]
	// when a kind collides with a reserved schema token. The reserved set is
	// injected configuration (see [WithReservedKinds]); nothing is reserved by
	// default.
	ErrReservedKindName = errors.New("reserved kind name")

	// ErrUnknownKind is returned by [Graph.SetCustomIcon] when no node or edge
	// in the graph uses the kind.
	ErrUnknownKind = errors.New("kind not used by any node or edge")
)

// ExportError wraps a filesystem failure during [Graph.ExportToFile]. The
// underlying cause is available through errors.Unwrap. Validation and
// serialization errors are never wrapped in an ExportError; they propagate
// as-is.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return "export " + e.Path + ": " + e.Err.Error()
}

func (e *ExportError) Unwrap() error { return e.Err }
