// File: allocate.go
// Role: Inverse-travel-time vehicle distribution with exact-sum rounding.

package allocate

import (
	"fmt"
	"math"

	"github.com/yatraflow/yatraflow/netgraph"
	"github.com/yatraflow/yatraflow/pathfind"
)

// Distribute splits total vehicles across up to MaxPaths alternative
// routes from start to end.
//
// Each candidate's weight is 1/travelTime; its allocation is
// floor(total * weight/totalWeight). The rounding leftover is added in
// full to the first candidate (the globally shortest route), so the
// assignments sum exactly to total with no fractional vehicles.
//
// Degenerate trivial route: when start == end the only candidate is the
// single-node path with zero travel time; it receives the entire total
// with weight 1.
//
// Returns a Plan with Success == false and a Reason when pathfind yields
// no candidates; that is an expected outcome, not an error. Errors are
// returned for a nil graph, unknown endpoints, or a negative total.
func Distribute(g *netgraph.Graph, start, end string, total int, opts ...Option) (Plan, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Plan{}, ErrNilGraph
	}
	if total < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrNegativeVehicles, total)
	}

	var pathOpts []pathfind.Option
	if cfg.Cost != nil {
		pathOpts = append(pathOpts, pathfind.WithCost(cfg.Cost))
	}
	paths, err := pathfind.AlternativePaths(g, start, end, cfg.MaxPaths, pathOpts...)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Start:         start,
		End:           end,
		TotalVehicles: total,
	}
	if len(paths) == 0 {
		plan.Reason = fmt.Sprintf("no routes available from %s to %s", start, end)

		return plan, nil
	}
	plan.Success = true
	plan.Assignments = make([]Assignment, len(paths))

	// Zero-travel-time candidate: only the trivial single-node route can
	// cost nothing. Its reciprocal weight would be infinite, so it simply
	// absorbs the entire total.
	for i, p := range paths {
		if p.TravelTime <= 0 {
			for j := range paths {
				plan.Assignments[j] = Assignment{Path: paths[j]}
			}
			plan.Assignments[i].Weight = 1
			plan.Assignments[i].Vehicles = total

			return plan, nil
		}
	}

	// Weight each route by the reciprocal of its travel time.
	var totalWeight float64
	weights := make([]float64, len(paths))
	for i, p := range paths {
		weights[i] = 1 / p.TravelTime
		totalWeight += weights[i]
	}

	// Floor allocations, tracking how many vehicles the flooring dropped.
	assigned := 0
	for i, p := range paths {
		count := int(math.Floor(float64(total) * (weights[i] / totalWeight)))
		plan.Assignments[i] = Assignment{
			Path:     p,
			Weight:   weights[i],
			Vehicles: count,
		}
		assigned += count
	}

	// The entire leftover goes to the first (globally shortest) route so
	// the counts sum exactly to total.
	plan.Assignments[0].Vehicles += total - assigned

	return plan, nil
}
