// This file declares Node, Edge, Category, Graph, NodeOption, EdgeOption,
// sentinel errors, and the New constructor.

package netgraph

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for network graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("netgraph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("netgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("netgraph: edge not found")

	// ErrNonPositiveDistance indicates an edge was given a distance <= 0.
	ErrNonPositiveDistance = errors.New("netgraph: edge distance must be positive")

	// ErrNonPositiveTravelTime indicates an edge was given a base travel
	// time <= 0.
	ErrNonPositiveTravelTime = errors.New("netgraph: edge travel time must be positive")

	// ErrNonPositiveCapacity indicates an edge was given a capacity <= 0.
	ErrNonPositiveCapacity = errors.New("netgraph: edge capacity must be positive")

	// ErrNegativeLoad indicates a load update with a negative value.
	ErrNegativeLoad = errors.New("netgraph: edge load must be non-negative")
)

// Category classifies a node's role in the road network.
type Category string

const (
	// CategoryEntry marks an entry gate into the network.
	CategoryEntry Category = "entry"

	// CategoryIntersection marks an interior road junction (the default).
	CategoryIntersection Category = "intersection"

	// CategoryDestination marks a terminal point of interest.
	CategoryDestination Category = "destination"
)

// DefaultCapacity is the vehicle capacity assumed for edges whose
// capacity was not supplied at construction time.
const DefaultCapacity = 100

// Node represents a point in the road network.
//
// Location is stored as an orb.Point in (longitude, latitude) order.
// Neighbors lists the IDs of nodes reachable via one outgoing edge; it is
// derived from the edge set and populated on read, so callers may mutate
// the returned slice freely without affecting the graph.
type Node struct {
	// ID is the unique identifier for this node within its Graph.
	ID string

	// Name is the human-readable display name.
	Name string

	// Category classifies the node (entry, intersection, destination).
	Category Category

	// Location holds geographic coordinates as (lon, lat).
	Location orb.Point

	// Destination reports whether this node is a destination of interest
	// (e.g. a temple) rather than plain road infrastructure.
	Destination bool

	// Neighbors are the IDs of directly reachable downstream nodes,
	// sorted ascending. Derived; see AddEdge.
	Neighbors []string
}

// Edge represents a directed road segment between two nodes.
//
// ID is always derived as "<From>-<To>". CurrentTravelTime is recomputed
// whenever Load changes (see UpdateEdgeLoad) and equals BaseTravelTime at
// zero load.
type Edge struct {
	// ID uniquely identifies this edge, derived as "<From>-<To>".
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Distance is the physical length of the segment (> 0).
	Distance float64

	// BaseTravelTime is the uncongested traversal time (> 0).
	// Defaults to Distance when unspecified.
	BaseTravelTime float64

	// Capacity is the vehicle capacity of the segment (> 0).
	Capacity float64

	// Load is the current vehicle count on the segment (>= 0).
	Load float64

	// CurrentTravelTime is the live congestion-adjusted traversal time:
	// BaseTravelTime * (1 + Load/Capacity).
	CurrentTravelTime float64

	// SpeedLimit is optional road metadata; zero means unspecified.
	SpeedLimit float64

	// RoadClass is an optional road-class tag (e.g. "highway", "street").
	RoadClass string
}

// NodeOption configures a node as it is added to the graph.
type NodeOption func(*Node)

// WithName sets the node's display name.
func WithName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

// WithCategory sets the node's category.
func WithCategory(c Category) NodeOption {
	return func(n *Node) { n.Category = c }
}

// WithLocation sets the node's geographic coordinates.
func WithLocation(lat, lon float64) NodeOption {
	return func(n *Node) { n.Location = orb.Point{lon, lat} }
}

// WithDestination marks the node as a destination of interest.
func WithDestination() NodeOption {
	return func(n *Node) { n.Destination = true }
}

// edgeConfig collects per-edge settings resolved from EdgeOption values
// before the Edge records are materialized.
type edgeConfig struct {
	travelTime    float64
	capacity      float64
	speedLimit    float64
	roadClass     string
	bidirectional bool
}

// EdgeOption configures an edge as it is added to the graph.
type EdgeOption func(*edgeConfig)

// WithTravelTime sets the uncongested base travel time.
// When omitted, the base travel time defaults to the edge's distance.
func WithTravelTime(t float64) EdgeOption {
	return func(c *edgeConfig) { c.travelTime = t }
}

// WithCapacity sets the edge's vehicle capacity.
// When omitted, DefaultCapacity is assumed.
func WithCapacity(cap float64) EdgeOption {
	return func(c *edgeConfig) { c.capacity = cap }
}

// WithSpeedLimit sets the edge's speed limit metadata.
func WithSpeedLimit(s float64) EdgeOption {
	return func(c *edgeConfig) { c.speedLimit = s }
}

// WithRoadClass sets the edge's road-class tag.
func WithRoadClass(class string) EdgeOption {
	return func(c *edgeConfig) { c.roadClass = class }
}

// Bidirectional requests the symmetric reverse edge as well: AddEdge
// inserts both directed edges with the same base metrics, each under its
// own "<from>-<to>" identifier and with an independently mutable load.
func Bidirectional() EdgeOption {
	return func(c *edgeConfig) { c.bidirectional = true }
}

// Graph is the in-memory road network.
//
// muNode protects the node catalog; muEdge protects the edge catalog and
// the derived adjacency. See the package documentation for the full
// concurrency contract.
type Graph struct {
	muNode sync.RWMutex // guards nodes
	muEdge sync.RWMutex // guards edges and out

	nodes map[string]*Node // node ID → node
	edges map[string]*Edge // edge ID → edge

	// out[from] is the set of node IDs reachable from `from`
	// via one directed edge.
	out map[string]map[string]struct{}
}

// New creates an empty road-network graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		out:   make(map[string]map[string]struct{}),
	}
}

// EdgeID derives the deterministic identifier of the directed edge
// from → to. The derivation is part of the public contract: persisted or
// logged representations must reproduce it.
func EdgeID(from, to string) string {
	return from + "-" + to
}
