// This file declares Path, CostFunc, Options, functional options, and the
// sentinel errors of the pathfind package.

package pathfind

import (
	"errors"

	"github.com/yatraflow/yatraflow/netgraph"
)

// Sentinel errors returned by the path searches.
var (
	// ErrNilGraph indicates that a nil *netgraph.Graph was supplied.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrStartNotFound indicates the start node does not exist in the graph.
	ErrStartNotFound = errors.New("pathfind: start node not found")

	// ErrEndNotFound indicates the end node does not exist in the graph.
	ErrEndNotFound = errors.New("pathfind: end node not found")

	// ErrNegativeCost indicates the cost function produced a negative
	// value for some edge; Dijkstra requires non-negative costs.
	ErrNegativeCost = errors.New("pathfind: negative edge cost")
)

// DefaultAlternatives is the number of alternative paths requested when
// the caller passes k <= 0.
const DefaultAlternatives = 3

// CostFunc maps an edge to its non-negative traversal cost.
type CostFunc func(netgraph.Edge) float64

// CurrentTravelTimeCost is the default CostFunc: the edge's live
// congestion-adjusted travel time. Non-negative as long as load and
// capacity are non-negative.
func CurrentTravelTimeCost(e netgraph.Edge) float64 {
	return e.CurrentTravelTime
}

// Path is one route through the network from start to end.
//
// Nodes holds the ordered node IDs, start and end inclusive; Edges holds
// the ordered IDs of the traversed edges (len(Edges) == len(Nodes)-1).
// TravelTime is the sum of each traversed edge's cost under the query's
// cost function, evaluated live at query time; Distance is the summed
// physical distance. A not-found outcome carries Found == false, empty
// sequences, infinite TravelTime, and a human-readable Reason.
type Path struct {
	Found      bool     // whether a route exists
	Nodes      []string // ordered node IDs, inclusive of both endpoints
	Edges      []string // ordered traversed edge IDs
	Distance   float64  // summed edge distance
	TravelTime float64  // summed edge cost (congestion-adjusted by default)
	Reason     string   // set when Found == false
}

// SameRoute reports whether p and q traverse the identical ordered node
// sequence. Two paths over the same nodes are the same route even if
// edge attributes differ; this is the distinctness criterion of the
// alternative-path search.
func (p Path) SameRoute(q Path) bool {
	if len(p.Nodes) != len(q.Nodes) {
		return false
	}
	for i := range p.Nodes {
		if p.Nodes[i] != q.Nodes[i] {
			return false
		}
	}

	return true
}

// Options configures the path searches.
//
// Cost — edge cost function; defaults to CurrentTravelTimeCost.
type Options struct {
	Cost CostFunc
}

// Option is a functional option for configuring the path searches.
type Option func(*Options)

// WithCost substitutes a custom edge-cost function. The function must be
// non-negative over all edges; a negative value aborts the search with
// ErrNegativeCost.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// DefaultOptions returns the Options used when no overrides are given.
func DefaultOptions() Options {
	return Options{Cost: CurrentTravelTimeCost}
}
