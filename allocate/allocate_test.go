package allocate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatraflow/yatraflow/allocate"
	"github.com/yatraflow/yatraflow/netgraph"
	"github.com/yatraflow/yatraflow/pathfind"
)

// buildTriangle constructs the reference network with two distinct A→C
// routes: [A B C] at travel time 10 and [A C] at travel time 20.
func buildTriangle(t *testing.T) *netgraph.Graph {
	t.Helper()
	g := netgraph.New()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id))
	}
	for _, e := range []struct {
		from, to   string
		travelTime float64
	}{
		{"A", "B", 5},
		{"B", "C", 5},
		{"A", "C", 20},
	} {
		_, err := g.AddEdge(e.from, e.to, e.travelTime,
			netgraph.WithTravelTime(e.travelTime), netgraph.WithCapacity(100))
		require.NoError(t, err)
	}

	return g
}

func TestDistribute_ReferenceScenario(t *testing.T) {
	// Travel times 10 and 20 ⇒ weights 1/10 and 1/20.
	// floor(100 * 2/3) = 66, floor(100 * 1/3) = 33; the leftover vehicle
	// goes to the first (shortest) route: 67 and 33.
	g := buildTriangle(t)

	plan, err := allocate.Distribute(g, "A", "C", 100, allocate.WithMaxPaths(2))
	require.NoError(t, err)
	require.True(t, plan.Success)
	require.Len(t, plan.Assignments, 2)

	first, second := plan.Assignments[0], plan.Assignments[1]
	assert.Equal(t, []string{"A", "B", "C"}, first.Path.Nodes)
	assert.Equal(t, []string{"A", "C"}, second.Path.Nodes)
	assert.InDelta(t, 0.1, first.Weight, 1e-12)
	assert.InDelta(t, 0.05, second.Weight, 1e-12)
	assert.Equal(t, 67, first.Vehicles)
	assert.Equal(t, 33, second.Vehicles)
}

func TestDistribute_ExactSumInvariant(t *testing.T) {
	// For any total, the assigned counts sum exactly to it and every
	// count is non-negative.
	g := buildTriangle(t)

	for _, total := range []int{0, 1, 7, 99, 100, 101, 12345} {
		plan, err := allocate.Distribute(g, "A", "C", total)
		require.NoError(t, err)
		require.True(t, plan.Success)

		sum := 0
		for _, a := range plan.Assignments {
			assert.GreaterOrEqual(t, a.Vehicles, 0)
			sum += a.Vehicles
		}
		assert.Equal(t, total, sum, "total=%d", total)
	}
}

func TestDistribute_NoCandidatesIsOutcome(t *testing.T) {
	// C has no outgoing edges, so no routes exist; the plan reports
	// failure with a reason instead of returning an error.
	g := buildTriangle(t)

	plan, err := allocate.Distribute(g, "C", "A", 50)
	require.NoError(t, err)
	assert.False(t, plan.Success)
	assert.NotEmpty(t, plan.Reason)
	assert.Empty(t, plan.Assignments)
	assert.Equal(t, 50, plan.TotalVehicles)
}

func TestDistribute_Validation(t *testing.T) {
	g := buildTriangle(t)

	_, err := allocate.Distribute(nil, "A", "C", 10)
	assert.ErrorIs(t, err, allocate.ErrNilGraph)

	_, err = allocate.Distribute(g, "A", "C", -1)
	assert.ErrorIs(t, err, allocate.ErrNegativeVehicles)

	_, err = allocate.Distribute(g, "ghost", "C", 10)
	assert.ErrorIs(t, err, pathfind.ErrStartNotFound)
}

func TestDistribute_SinglePathTakesAll(t *testing.T) {
	g := netgraph.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)

	plan, err := allocate.Distribute(g, "A", "B", 42)
	require.NoError(t, err)
	require.True(t, plan.Success)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, 42, plan.Assignments[0].Vehicles)
}

func TestDistribute_TrivialRouteAbsorbsTotal(t *testing.T) {
	// start == end yields the zero-travel-time single-node route; a
	// reciprocal weight would be infinite, so it absorbs the whole total.
	g := buildTriangle(t)

	plan, err := allocate.Distribute(g, "A", "A", 9)
	require.NoError(t, err)
	require.True(t, plan.Success)
	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, []string{"A"}, plan.Assignments[0].Path.Nodes)
	assert.Equal(t, 9, plan.Assignments[0].Vehicles)
}

func TestDistribute_CongestionRebalances(t *testing.T) {
	// Loading the short route narrows the travel-time gap, so the direct
	// road's share grows while the exact-sum invariant holds.
	g := buildTriangle(t)

	base, err := allocate.Distribute(g, "A", "C", 100)
	require.NoError(t, err)

	require.NoError(t, g.UpdateEdgeLoad("A", "B", 100)) // 5 → 10
	require.NoError(t, g.UpdateEdgeLoad("B", "C", 100)) // 5 → 10

	loaded, err := allocate.Distribute(g, "A", "C", 100)
	require.NoError(t, err)
	require.True(t, loaded.Success)

	assert.Greater(t, loaded.Assignments[1].Vehicles, base.Assignments[1].Vehicles)
	sum := 0
	for _, a := range loaded.Assignments {
		sum += a.Vehicles
	}
	assert.Equal(t, 100, sum)
}
