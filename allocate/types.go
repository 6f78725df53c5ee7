// This file declares Plan, Assignment, Options, functional options, and
// the sentinel errors of the allocate package.

package allocate

import (
	"errors"

	"github.com/yatraflow/yatraflow/pathfind"
)

// Sentinel errors for traffic distribution.
var (
	// ErrNilGraph indicates that a nil *netgraph.Graph was supplied.
	ErrNilGraph = errors.New("allocate: graph is nil")

	// ErrNegativeVehicles indicates a negative total vehicle count.
	ErrNegativeVehicles = errors.New("allocate: vehicle total must be non-negative")
)

// DefaultMaxPaths is the number of candidate routes requested when the
// caller does not override it.
const DefaultMaxPaths = 3

// Assignment is one route's share of the distribution plan.
type Assignment struct {
	// Path is the candidate route, including its node and edge sequences,
	// travel time, and distance as found at query time.
	Path pathfind.Path

	// Weight is the route's share of the total weight, computed as the
	// reciprocal of its travel time (faster routes weigh more).
	Weight float64

	// Vehicles is the final integer vehicle count assigned to the route.
	Vehicles int
}

// Plan is the result of distributing a vehicle total across candidate
// routes. When Success is false, Reason explains why no distribution was
// produced; this is a normal outcome, distinguished from errors.
type Plan struct {
	Start         string       // requested origin node ID
	End           string       // requested destination node ID
	TotalVehicles int          // requested vehicle total
	Success       bool         // whether any candidate routes were found
	Reason        string       // set when Success == false
	Assignments   []Assignment // per-route weights and vehicle counts
}

// Options configures Distribute.
//
// MaxPaths — number of alternative routes to request (default 3).
// Cost     — edge cost function forwarded to pathfind.
type Options struct {
	MaxPaths int
	Cost     pathfind.CostFunc
}

// Option is a functional option for configuring Distribute.
type Option func(*Options)

// WithMaxPaths sets how many alternative routes to request.
// Values <= 0 fall back to DefaultMaxPaths.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPaths = n
		}
	}
}

// WithCost forwards a custom edge-cost function to the path searches.
func WithCost(fn pathfind.CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// DefaultOptions returns the Options used when no overrides are given.
func DefaultOptions() Options {
	return Options{MaxPaths: DefaultMaxPaths}
}
