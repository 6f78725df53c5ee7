// File: build.go
// Role: Record-driven graph construction: nodes first, then edges,
//       fail-fast with wrapped sentinel context.

package builder

import (
	"fmt"

	"github.com/paulmach/orb/geo"

	"github.com/yatraflow/yatraflow/netgraph"
)

// metersPerKilometer converts the haversine result to the kilometer
// scale used for recorded road distances.
const metersPerKilometer = 1000.0

// Build assembles a netgraph.Graph from the given records.
//
// All node records are inserted first (later duplicates overwrite earlier
// ones, matching AddNode's idempotent semantics), then all edge records
// in order. The first invalid record aborts the build: the error wraps
// the underlying netgraph sentinel and names the offending record, and no
// graph is returned.
//
// Complexity: O(N + E) over the record counts.
func Build(nodes []NodeRecord, edges []EdgeRecord, opts ...Option) (*netgraph.Graph, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	g := netgraph.New()

	for _, n := range nodes {
		nodeOpts := []netgraph.NodeOption{
			netgraph.WithLocation(n.Latitude, n.Longitude),
		}
		if n.Name != "" {
			nodeOpts = append(nodeOpts, netgraph.WithName(n.Name))
		}
		if n.Category != "" {
			nodeOpts = append(nodeOpts, netgraph.WithCategory(n.Category))
		}
		if n.Destination {
			nodeOpts = append(nodeOpts, netgraph.WithDestination())
		}
		if err := g.AddNode(n.ID, nodeOpts...); err != nil {
			return nil, fmt.Errorf("builder: node %q: %w", n.ID, err)
		}
	}

	for _, e := range edges {
		distance := e.Distance
		if distance <= 0 {
			if !cfg.GeodesicDistance {
				return nil, fmt.Errorf("%w: %s→%s", ErrMissingDistance, e.From, e.To)
			}
			d, err := geodesicDistance(g, e.From, e.To)
			if err != nil {
				return nil, err
			}
			distance = d
		}

		edgeOpts := make([]netgraph.EdgeOption, 0, 5)
		// Zero means "unset" for the optional metrics; non-zero values are
		// forwarded as-is so netgraph can reject invalid ones.
		if e.TravelTime != 0 {
			edgeOpts = append(edgeOpts, netgraph.WithTravelTime(e.TravelTime))
		}
		if e.Capacity != 0 {
			edgeOpts = append(edgeOpts, netgraph.WithCapacity(e.Capacity))
		}
		if e.SpeedLimit != 0 {
			edgeOpts = append(edgeOpts, netgraph.WithSpeedLimit(e.SpeedLimit))
		}
		if e.RoadClass != "" {
			edgeOpts = append(edgeOpts, netgraph.WithRoadClass(e.RoadClass))
		}
		if e.Bidirectional {
			edgeOpts = append(edgeOpts, netgraph.Bidirectional())
		}
		if _, err := g.AddEdge(e.From, e.To, distance, edgeOpts...); err != nil {
			return nil, fmt.Errorf("builder: edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// geodesicDistance computes the haversine distance in kilometers between
// the coordinates of the two named nodes.
func geodesicDistance(g *netgraph.Graph, from, to string) (float64, error) {
	a, err := g.Node(from)
	if err != nil {
		return 0, fmt.Errorf("builder: edge %s→%s: %w", from, to, err)
	}
	b, err := g.Node(to)
	if err != nil {
		return 0, fmt.Errorf("builder: edge %s→%s: %w", from, to, err)
	}

	return geo.DistanceHaversine(a.Location, b.Location) / metersPerKilometer, nil
}
