// File: stats.go
// Role: Read-only diagnostic snapshot of the network.

package netgraph

// NetworkStats is a read-only snapshot of catalog sizes and congestion
// headline figures, suitable for diagnostics and admission checks.
type NetworkStats struct {
	// NodeCount is the number of nodes in the network.
	NodeCount int

	// EdgeCount is the number of directed edges.
	EdgeCount int

	// DestinationCount is the number of nodes flagged as destinations
	// of interest.
	DestinationCount int

	// TotalCapacity is the summed vehicle capacity over all edges.
	TotalCapacity float64

	// SaturatedEdgeCount is the number of edges with load >= capacity,
	// i.e. edges whose current travel time is at least double the base.
	SaturatedEdgeCount int
}

// Stats produces a deterministic snapshot of network size and congestion.
//
// The two catalogs are read under their own locks in sequence, so the
// snapshot is consistent per phase without holding both locks at once.
//
// Complexity: O(V + E)
func (g *Graph) Stats() NetworkStats {
	var stats NetworkStats

	g.muNode.RLock()
	stats.NodeCount = len(g.nodes)
	for _, n := range g.nodes {
		if n.Destination {
			stats.DestinationCount++
		}
	}
	g.muNode.RUnlock()

	g.muEdge.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.TotalCapacity += e.Capacity
		if e.Load >= e.Capacity {
			stats.SaturatedEdgeCount++
		}
	}
	g.muEdge.RUnlock()

	return stats
}
