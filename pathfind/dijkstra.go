// File: dijkstra.go
// Role: Single-source label-setting shortest path with early destination
//       exit, on a lazy-decrease-key binary heap.

package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/yatraflow/yatraflow/netgraph"
)

// ShortestPath computes the minimum-cost route from start to end in g.
//
// Edge cost defaults to the live congestion-adjusted travel time and can
// be replaced via WithCost. Ties between equal-cost candidates are broken
// by the sorted edge-catalog order, so the result is deterministic for a
// fixed graph state.
//
// Returns:
//
//   - a found Path carrying the node sequence, edge sequence, summed
//     distance, and summed cost; or
//   - a not-found Path (Found == false, infinite TravelTime, Reason set)
//     with a nil error when no route exists — this is an outcome, not an
//     error; or
//   - an error for invalid inputs: nil graph, unknown endpoints, or a
//     cost function that yields a negative value.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *netgraph.Graph, start, end string, opts ...Option) (Path, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return Path{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !g.HasNode(end) {
		return Path{}, fmt.Errorf("%w: %q", ErrEndNotFound, end)
	}

	// 3) Trivial route: a single-node path with zero distance and cost.
	if start == end {
		return Path{Found: true, Nodes: []string{start}}, nil
	}

	// 4) Snapshot the edge catalog once. Edges() is sorted by ID, so the
	//    per-node adjacency below inherits a stable relaxation order and
	//    the whole search sees one consistent congestion snapshot.
	adj := make(map[string][]netgraph.Edge)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e)
	}

	r := &searcher{
		adj:     adj,
		cost:    cfg.Cost,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		prevEdg: make(map[string]netgraph.Edge),
		visited: make(map[string]bool),
	}

	// 5) Run the label-setting loop from start until end is settled.
	if err := r.run(start, end); err != nil {
		return Path{}, err
	}

	// 6) Reconstruct, or report the not-found outcome.
	d, reached := r.dist[end]
	if !reached || math.IsInf(d, 1) {
		return Path{
			Found:      false,
			TravelTime: math.Inf(1),
			Reason:     fmt.Sprintf("no route from %s to %s", start, end),
		}, nil
	}

	return r.reconstruct(start, end), nil
}

// searcher holds the mutable state for a single shortest-path execution.
type searcher struct {
	adj     map[string][]netgraph.Edge  // from → outgoing edges, ID order
	cost    CostFunc                    // edge cost function
	dist    map[string]float64          // node → best known cost from start
	prev    map[string]string           // node → predecessor node
	prevEdg map[string]netgraph.Edge    // node → edge used to reach it
	visited map[string]bool             // node → cost finalized
}

// run executes the label-setting loop. It stops as soon as end is popped
// as the minimum-cost frontier node; costs to nodes beyond end are never
// finalized.
func (r *searcher) run(start, end string) error {
	pq := make(itemHeap, 0, len(r.adj))
	heap.Init(&pq)
	r.dist[start] = 0
	heap.Push(&pq, &item{id: start, dist: 0})

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item)
		u := it.id

		// Stale heap entry under lazy decrease-key; skip.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// Early exit: the destination's cost is final once popped.
		if u == end {
			return nil
		}

		// Relax all outgoing edges of u in stable catalog order.
		for _, e := range r.adj[u] {
			if r.visited[e.To] {
				continue
			}
			w := r.cost(e)
			if w < 0 {
				return fmt.Errorf("%w: edge %s cost=%g", ErrNegativeCost, e.ID, w)
			}
			next := r.dist[u] + w
			if best, seen := r.dist[e.To]; seen && next >= best {
				continue
			}
			r.dist[e.To] = next
			r.prev[e.To] = u
			r.prevEdg[e.To] = e
			heap.Push(&pq, &item{id: e.To, dist: next})
		}
	}

	return nil
}

// reconstruct walks the predecessor chain from end back to start and
// assembles the Path, summing distance and cost over the traversed edges.
func (r *searcher) reconstruct(start, end string) Path {
	p := Path{Found: true}

	var nodes []string
	var edges []string
	for at := end; at != start; at = r.prev[at] {
		e := r.prevEdg[at]
		nodes = append(nodes, at)
		edges = append(edges, e.ID)
		p.Distance += e.Distance
		p.TravelTime += r.cost(e)
	}
	nodes = append(nodes, start)

	// Reverse into start → end order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	p.Nodes = nodes
	p.Edges = edges

	return p
}

// item is one (node, cost) entry in the priority queue.
type item struct {
	id   string  // node ID
	dist float64 // cost from start at push time
}

// itemHeap is a min-heap of *item ordered by dist ascending, used with
// the lazy decrease-key strategy: improved labels push duplicates, and
// stale entries are skipped on pop via the visited set.
type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
