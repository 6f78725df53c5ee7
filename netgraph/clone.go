// File: clone.go
// Role: Deep copy of graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package netgraph

// Clone returns a deep copy of the graph: nodes, edges, and adjacency.
//
// The clone is a fully independent value that aliases none of the live
// graph's internal collections, so edge suppression and load mutation on
// the clone can never leak into the original — the ownership boundary
// the alternative-path search relies on.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := New()

	g.muNode.RLock()
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	g.muNode.RUnlock()

	g.muEdge.RLock()
	for id, e := range g.edges {
		cp := *e
		clone.edges[id] = &cp
	}
	for from, bucket := range g.out {
		nb := make(map[string]struct{}, len(bucket))
		for to := range bucket {
			nb[to] = struct{}{}
		}
		clone.out[from] = nb
	}
	g.muEdge.RUnlock()

	return clone
}
