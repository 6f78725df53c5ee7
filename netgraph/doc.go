// Package netgraph defines the road-network Graph, Node, and Edge types,
// and provides thread-safe primitives for building the network, feeding it
// live congestion data, and cloning it for what-if queries.
//
// The graph is directed. A "bidirectional" road is sugar for two directed
// edges inserted independently, each with its own identifier and its own
// mutable load. Edge identifiers are derived deterministically as
// "<from>-<to>", so any persisted or logged representation reproduces the
// same identifier for the same road segment.
//
// Congestion model:
//
//	currentTravelTime = baseTravelTime * (1 + load/capacity)
//
// Monotonically increasing in load, equal to the base travel time at zero
// load, and intentionally unbounded above: travel time degrades linearly
// with saturation and a road loaded to twice its capacity costs three
// times its base time.
//
// Concurrency model:
//
// All APIs use two sync.RWMutex locks internally (muNode for nodes,
// muEdge for edges and adjacency). Structural mutation (AddNode, AddEdge,
// RemoveEdge) is intended for a single-threaded setup phase before the
// graph is published. UpdateEdgeLoad is the sole steady-state mutator; it
// replaces an edge's load and recomputed travel time under the edge write
// lock, so a concurrent reader never observes a half-updated pair. Path
// queries may run concurrently with load updates; a query may read a load
// that changes immediately afterwards, which is acceptable staleness.
//
// Errors:
//
//	ErrEmptyNodeID        - node ID is the empty string.
//	ErrNodeNotFound       - an operation referenced a non-existent node.
//	ErrEdgeNotFound       - an operation referenced a non-existent edge.
//	ErrNonPositiveDistance - edge distance must be > 0.
//	ErrNonPositiveTravelTime - edge base travel time must be > 0.
//	ErrNonPositiveCapacity - edge capacity must be > 0.
//	ErrNegativeLoad       - edge load must be >= 0.
package netgraph
