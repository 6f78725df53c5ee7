// Package yatraflow models a fixed road network as a weighted directed
// graph and answers the three questions a traffic-management service asks:
// what is the fastest route under current congestion, which materially
// different alternatives exist, and how should a batch of vehicles be
// split across those alternatives.
//
// The library is organized into four subpackages:
//
//	netgraph/ — the network itself: nodes, directed edges, live
//	            congestion-adjusted travel times, cloning, GeoJSON export
//	pathfind/ — congestion-aware Dijkstra shortest path and a greedy
//	            edge-suppression search for diverse alternative routes
//	allocate/ — inverse-travel-time vehicle distribution across candidate
//	            routes with an exact-sum guarantee
//	builder/  — construction of a netgraph.Graph from plain node and edge
//	            records, with optional geodesic distance derivation
//
// Quick ASCII example:
//
//	[gate]──5──[junction]──5──[temple]
//	    \                      /
//	     `────────20──────────'
//
// Two routes from the gate to the temple; as load builds on the short
// pair of segments, their current travel time climbs and traffic spills
// onto the long direct road.
//
// All operations are synchronous and CPU-bound. Structural mutation
// belongs to a single-threaded setup phase; after the graph is published,
// load updates and path queries may run concurrently.
package yatraflow
