// File: alternatives.go
// Role: Greedy edge-suppression search for diverse alternative routes.

package pathfind

import (
	"github.com/yatraflow/yatraflow/netgraph"
)

// AlternativePaths returns up to k materially different routes from start
// to end, seeded with the shortest path.
//
// Strategy: for the most recently accepted path, suppress each of its
// edges in order on a deep working copy of the graph and recompute the
// shortest path on the reduced copy. The first recomputed path whose node
// sequence differs from every accepted path is accepted, and the search
// moves to the next iteration. If no suppression along the current path
// yields a new distinct route, the search terminates early.
//
// This is a best-effort diversity heuristic, not a loopless
// k-shortest-paths algorithm: it may return fewer than k paths, and the
// paths beyond the first are not guaranteed to be the next-cheapest ones.
//
// k <= 0 is treated as DefaultAlternatives. When no route exists at all,
// the result is an empty slice with a nil error — "no alternatives" is an
// outcome, not an error. Input validation errors match ShortestPath.
//
// Complexity: O(k · L · (V + E) log V) where L bounds the edge count of
// an accepted path, dominated by one clone and one search per suppression.
func AlternativePaths(g *netgraph.Graph, start, end string, k int, opts ...Option) ([]Path, error) {
	if k <= 0 {
		k = DefaultAlternatives
	}

	// Seed with the single shortest path.
	first, err := ShortestPath(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	if !first.Found {
		return []Path{}, nil
	}

	accepted := []Path{first}
	for len(accepted) < k {
		last := accepted[len(accepted)-1]

		var found bool
		for i := 0; i+1 < len(last.Nodes); i++ {
			from, to := last.Nodes[i], last.Nodes[i+1]

			// Suppress one edge on an independent deep copy; discarding
			// the copy afterwards restores the edge for the next attempt.
			working := g.Clone()
			if err = working.RemoveEdge(from, to); err != nil {
				return nil, err
			}

			candidate, serr := ShortestPath(working, start, end, opts...)
			if serr != nil {
				return nil, serr
			}
			if candidate.Found && !seen(accepted, candidate) {
				accepted = append(accepted, candidate)
				found = true

				break
			}
		}
		if !found {
			break // no suppression yields a new route; stop early
		}
	}

	return accepted, nil
}

// seen reports whether candidate traverses the same ordered node sequence
// as any already-accepted path.
func seen(accepted []Path, candidate Path) bool {
	for _, p := range accepted {
		if p.SameRoute(candidate) {
			return true
		}
	}

	return false
}
