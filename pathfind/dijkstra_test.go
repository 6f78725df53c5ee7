// Package pathfind_test contains unit tests for the shortest-path search.
// These tests validate input validation, correctness on the reference
// triangle network, congestion sensitivity, custom cost functions, and
// edge cases such as the trivial single-node path and unreachable pairs.
package pathfind_test

import (
	"errors"
	"math"
	"testing"

	"github.com/yatraflow/yatraflow/netgraph"
	"github.com/yatraflow/yatraflow/pathfind"
)

// buildTriangle constructs the reference network:
//
//	A→B (travelTime 5, capacity 100)
//	B→C (travelTime 5, capacity 100)
//	A→C (travelTime 20, capacity 100)
func buildTriangle(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.New()
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	mustEdge(t, g, "A", "B", 5)
	mustEdge(t, g, "B", "C", 5)
	mustEdge(t, g, "A", "C", 20)

	return g
}

func mustEdge(t *testing.T, g *netgraph.Graph, from, to string, travelTime float64) {
	t.Helper()
	_, err := g.AddEdge(from, to, travelTime,
		netgraph.WithTravelTime(travelTime), netgraph.WithCapacity(100))
	if err != nil {
		t.Fatal(err)
	}
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := pathfind.ShortestPath(nil, "A", "B")
	if !errors.Is(err, pathfind.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	g := buildTriangle(t)

	_, err := pathfind.ShortestPath(g, "X", "C")
	if !errors.Is(err, pathfind.ErrStartNotFound) {
		t.Fatalf("expected ErrStartNotFound, got %v", err)
	}

	_, err = pathfind.ShortestPath(g, "A", "X")
	if !errors.Is(err, pathfind.ErrEndNotFound) {
		t.Fatalf("expected ErrEndNotFound, got %v", err)
	}
}

func TestShortestPath_NegativeCostRejected(t *testing.T) {
	g := buildTriangle(t)

	_, err := pathfind.ShortestPath(g, "A", "C",
		pathfind.WithCost(func(netgraph.Edge) float64 { return -1 }))
	if !errors.Is(err, pathfind.ErrNegativeCost) {
		t.Fatalf("expected ErrNegativeCost, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic correctness on the reference triangle.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	g := buildTriangle(t)

	p, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Found {
		t.Fatal("expected a found path")
	}
	assertNodes(t, p, "A", "B", "C")
	if got, want := p.TravelTime, 10.0; got != want {
		t.Errorf("travelTime = %g; want %g", got, want)
	}
	if got, want := p.Distance, 10.0; got != want {
		t.Errorf("distance = %g; want %g", got, want)
	}
	if len(p.Edges) != 2 || p.Edges[0] != "A-B" || p.Edges[1] != "B-C" {
		t.Errorf("unexpected edge sequence: %v", p.Edges)
	}
}

func TestShortestPath_CostSumMatchesReportedTravelTime(t *testing.T) {
	// If a path is found, its edge costs summed with the same cost
	// function must equal the reported travel time exactly.
	g := buildTriangle(t)
	if err := g.UpdateEdgeLoad("A", "B", 70); err != nil {
		t.Fatal(err)
	}

	p, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	var sum float64
	for i := 0; i+1 < len(p.Nodes); i++ {
		e, eerr := g.Edge(p.Nodes[i], p.Nodes[i+1])
		if eerr != nil {
			t.Fatal(eerr)
		}
		sum += e.CurrentTravelTime
	}
	if sum != p.TravelTime {
		t.Errorf("summed cost %g != reported travel time %g", sum, p.TravelTime)
	}
}

// ------------------------------------------------------------------------
// 3. Congestion sensitivity: load shifts the optimum.
// ------------------------------------------------------------------------

func TestShortestPath_CongestionShiftsRoute(t *testing.T) {
	g := buildTriangle(t)

	// Saturate A→B far past capacity: 5 * (1 + 300/100) = 20, and the
	// two-hop route costs 25 total, so the direct road (20) wins.
	if err := g.UpdateEdgeLoad("A", "B", 300); err != nil {
		t.Fatal(err)
	}

	p, err := pathfind.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	assertNodes(t, p, "A", "C")
	if p.TravelTime != 20 {
		t.Errorf("travelTime = %g; want 20", p.TravelTime)
	}
}

// ------------------------------------------------------------------------
// 4. Custom cost functions.
// ------------------------------------------------------------------------

func TestShortestPath_CustomCost(t *testing.T) {
	g := buildTriangle(t)

	// Costing by distance instead of travel time: same optimum here, but
	// the reported TravelTime must be the summed custom cost.
	p, err := pathfind.ShortestPath(g, "A", "C",
		pathfind.WithCost(func(e netgraph.Edge) float64 { return e.Distance }))
	if err != nil {
		t.Fatal(err)
	}
	assertNodes(t, p, "A", "B", "C")
	if p.TravelTime != 10 {
		t.Errorf("summed custom cost = %g; want 10", p.TravelTime)
	}

	// Hop count as cost prefers the direct edge.
	p, err = pathfind.ShortestPath(g, "A", "C",
		pathfind.WithCost(func(netgraph.Edge) float64 { return 1 }))
	if err != nil {
		t.Fatal(err)
	}
	assertNodes(t, p, "A", "C")
}

// ------------------------------------------------------------------------
// 5. Outcomes: trivial path, unreachable pairs, determinism.
// ------------------------------------------------------------------------

func TestShortestPath_TrivialSingleNode(t *testing.T) {
	g := buildTriangle(t)

	p, err := pathfind.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Found {
		t.Fatal("expected the trivial path to be found")
	}
	assertNodes(t, p, "A")
	if p.Distance != 0 || p.TravelTime != 0 {
		t.Errorf("trivial path must have zero distance and time, got %g/%g", p.Distance, p.TravelTime)
	}
	if len(p.Edges) != 0 {
		t.Errorf("trivial path must traverse no edges, got %v", p.Edges)
	}
}

func TestShortestPath_UnreachableIsOutcomeNotError(t *testing.T) {
	// Edges are directed: C has no outgoing edges, so C→A has no route.
	g := buildTriangle(t)

	p, err := pathfind.ShortestPath(g, "C", "A")
	if err != nil {
		t.Fatalf("unreachable must not be an error, got %v", err)
	}
	if p.Found {
		t.Fatal("expected Found == false")
	}
	if !math.IsInf(p.TravelTime, 1) {
		t.Errorf("travelTime = %g; want +Inf", p.TravelTime)
	}
	if len(p.Nodes) != 0 {
		t.Errorf("expected empty node sequence, got %v", p.Nodes)
	}
	if p.Reason == "" {
		t.Error("expected a human-readable reason")
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	// Two equal-cost routes: the tie-break may be arbitrary but must be
	// stable for a fixed graph.
	g := netgraph.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddNode(id); err != nil {
			t.Fatal(err)
		}
	}
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "A", "C", 1)
	mustEdge(t, g, "B", "D", 1)
	mustEdge(t, g, "C", "D", 1)

	first, err := pathfind.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, aerr := pathfind.ShortestPath(g, "A", "D")
		if aerr != nil {
			t.Fatal(aerr)
		}
		if !first.SameRoute(again) {
			t.Fatalf("run %d returned %v; first run returned %v", i, again.Nodes, first.Nodes)
		}
	}
}

// assertNodes fails the test unless p traverses exactly the given node
// sequence.
func assertNodes(t *testing.T, p pathfind.Path, want ...string) {
	t.Helper()
	if len(p.Nodes) != len(want) {
		t.Fatalf("node sequence = %v; want %v", p.Nodes, want)
	}
	for i := range want {
		if p.Nodes[i] != want[i] {
			t.Fatalf("node sequence = %v; want %v", p.Nodes, want)
		}
	}
}
