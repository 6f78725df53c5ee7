// File: graph.go
// Role: Node and edge lifecycle plus read accessors:
//       AddNode/AddEdge/UpdateEdgeLoad/RemoveEdge and the query surface.
// Determinism:
//   - Nodes() and Edges() return catalogs sorted by ID ascending.
//   - Neighbors(id) returns IDs sorted ascending.
// Concurrency:
//   - Mutations take the relevant write lock; queries take read locks.
//   - Accessors return copies; callers can never mutate internal state.

package netgraph

import (
	"fmt"
	"sort"
)

// AddNode inserts or overwrites a node. The operation is idempotent:
// re-adding an existing ID replaces its attributes and keeps its edges.
//
// Complexity: O(1)
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	n := &Node{
		ID:       id,
		Name:     id,
		Category: CategoryIntersection,
	}
	for _, opt := range opts {
		opt(n)
	}

	g.muNode.Lock()
	g.nodes[id] = n
	g.muNode.Unlock()

	return nil
}

// AddEdge creates the directed edge from → to and returns its derived ID.
//
// Both endpoints must already exist; otherwise the call fails with
// ErrNodeNotFound and the graph is left untouched (no partial edge).
// Defaults: base travel time ← distance, capacity ← DefaultCapacity,
// load ← 0. Re-adding an existing edge overwrites it, mirroring AddNode's
// idempotent semantics.
//
// With the Bidirectional option the symmetric reverse edge is inserted as
// well, with the same base metrics but an independently tracked load; the
// returned ID is that of the forward edge.
//
// Steps:
//  1. Validate IDs, distance, and resolved option values.
//  2. Verify both endpoints exist under the node read lock.
//  3. Materialize the forward Edge (and the reverse, if requested).
//  4. Store edge(s) and register adjacency under the edge write lock.
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, distance float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if distance <= 0 {
		return "", fmt.Errorf("%w: %s→%s distance=%g", ErrNonPositiveDistance, from, to, distance)
	}

	cfg := edgeConfig{
		travelTime: distance,
		capacity:   DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.travelTime <= 0 {
		return "", fmt.Errorf("%w: %s→%s travelTime=%g", ErrNonPositiveTravelTime, from, to, cfg.travelTime)
	}
	if cfg.capacity <= 0 {
		return "", fmt.Errorf("%w: %s→%s capacity=%g", ErrNonPositiveCapacity, from, to, cfg.capacity)
	}

	// 2) Both endpoints must exist before any edge state is written.
	g.muNode.RLock()
	_, fromOK := g.nodes[from]
	_, toOK := g.nodes[to]
	g.muNode.RUnlock()
	if !fromOK {
		return "", fmt.Errorf("%w: edge %s→%s references %q", ErrNodeNotFound, from, to, from)
	}
	if !toOK {
		return "", fmt.Errorf("%w: edge %s→%s references %q", ErrNodeNotFound, from, to, to)
	}

	// 3) Materialize edges outside the lock.
	forward := newEdge(from, to, distance, cfg)
	var reverse *Edge
	if cfg.bidirectional && from != to {
		reverse = newEdge(to, from, distance, cfg)
	}

	// 4) Store and link adjacency.
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.putEdge(forward)
	if reverse != nil {
		g.putEdge(reverse)
	}

	return forward.ID, nil
}

// newEdge materializes one directed Edge from validated inputs.
// Current travel time starts equal to the base (zero load).
func newEdge(from, to string, distance float64, cfg edgeConfig) *Edge {
	return &Edge{
		ID:                EdgeID(from, to),
		From:              from,
		To:                to,
		Distance:          distance,
		BaseTravelTime:    cfg.travelTime,
		Capacity:          cfg.capacity,
		Load:              0,
		CurrentTravelTime: cfg.travelTime,
		SpeedLimit:        cfg.speedLimit,
		RoadClass:         cfg.roadClass,
	}
}

// putEdge stores e and registers its adjacency. Caller holds muEdge.
func (g *Graph) putEdge(e *Edge) {
	g.edges[e.ID] = e
	if g.out[e.From] == nil {
		g.out[e.From] = make(map[string]struct{})
	}
	g.out[e.From][e.To] = struct{}{}
}

// UpdateEdgeLoad replaces the current load on the edge from → to and
// recomputes its congestion-adjusted travel time:
//
//	currentTravelTime = baseTravelTime * (1 + load/capacity)
//
// This is the sole channel by which congestion state enters the graph.
// The load/travel-time pair is replaced under the edge write lock, so a
// concurrent reader never observes one without the other.
//
// Complexity: O(1)
func (g *Graph) UpdateEdgeLoad(from, to string, load float64) error {
	if load < 0 {
		return fmt.Errorf("%w: %s→%s load=%g", ErrNegativeLoad, from, to, load)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e, ok := g.edges[EdgeID(from, to)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, EdgeID(from, to))
	}
	e.Load = load
	e.CurrentTravelTime = e.BaseTravelTime * (1 + load/e.Capacity)

	return nil
}

// RemoveEdge deletes the directed edge from → to and, when it was the
// only edge between the pair, unregisters the adjacency entry.
// Intended for edge suppression on cloned working graphs; the live graph
// is not expected to lose edges in steady state.
//
// Complexity: O(1)
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	eid := EdgeID(from, to)
	if _, ok := g.edges[eid]; !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, eid)
	}
	delete(g.edges, eid)
	if bucket := g.out[from]; bucket != nil {
		delete(bucket, to)
		if len(bucket) == 0 {
			delete(g.out, from)
		}
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID, with its derived
// Neighbors slice populated (sorted ascending).
func (g *Graph) Node(id string) (Node, error) {
	g.muNode.RLock()
	n, ok := g.nodes[id]
	if !ok {
		g.muNode.RUnlock()

		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	cp := *n
	g.muNode.RUnlock()

	neighbors, _ := g.Neighbors(id)
	cp.Neighbors = neighbors

	return cp, nil
}

// Nodes returns copies of all nodes sorted by ID ascending, each with its
// derived Neighbors populated.
//
// Complexity: O(V log V + E)
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()
	sort.Strings(ids)

	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		nodes = append(nodes, n)
	}

	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// HasEdge reports whether the directed edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[EdgeID(from, to)]

	return ok
}

// Edge returns a copy of the directed edge from → to.
func (g *Graph) Edge(from, to string) (Edge, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	e, ok := g.edges[EdgeID(from, to)]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, EdgeID(from, to))
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by ID ascending. Each copy is
// a consistent load/travel-time snapshot taken under the edge read lock.
//
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	g.muEdge.RUnlock()

	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	return edges
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Neighbors returns the IDs of nodes reachable from id via one directed
// edge, sorted ascending. The slice is a fresh copy.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	g.muEdge.RLock()
	bucket := g.out[id]
	ids := make([]string, 0, len(bucket))
	for to := range bucket {
		ids = append(ids, to)
	}
	g.muEdge.RUnlock()
	sort.Strings(ids)

	return ids, nil
}
