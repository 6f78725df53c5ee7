// Package pathfind implements congestion-aware shortest-path search and a
// diversity-seeking alternative-route search over a netgraph.Graph.
//
// ShortestPath runs Dijkstra's label-setting algorithm over non-negative
// edge costs. The default cost of an edge is its current
// (congestion-adjusted) travel time, so path cost is always a live
// quantity; an injected CostFunc can substitute any other non-negative
// metric. The search stops as soon as the destination is settled, so
// distances to irrelevant nodes are never computed.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Heap operations cost O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E) for the label maps and the heap under
//     lazy decrease-key.
//
// AlternativePaths is a greedy edge-suppression heuristic: it seeds the
// result with the shortest path, then repeatedly suppresses one edge of
// the most recently accepted path on a deep working copy of the graph and
// re-runs the search, accepting the first recomputed path whose node
// sequence has not been seen. It is a best-effort diversity search, NOT a
// loopless k-shortest-paths algorithm: it trades optimality for
// simplicity and may return fewer than k paths.
//
// Not-found is an outcome, not an error: an unreachable destination
// yields a Path with Found == false, infinite travel time, and a reason
// string. Errors are reserved for invalid inputs (nil graph, unknown
// endpoints, negative costs).
package pathfind
