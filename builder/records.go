// This file declares the plain record shapes consumed by Build, the
// builder options, and the package's sentinel errors.

package builder

import (
	"errors"

	"github.com/yatraflow/yatraflow/netgraph"
)

// Sentinel errors for record-driven construction.
var (
	// ErrMissingDistance indicates an edge record without a distance in a
	// build that has no way to derive one (see WithGeodesicDistance).
	ErrMissingDistance = errors.New("builder: edge record has no distance")
)

// NodeRecord is the plain construction input for one node.
type NodeRecord struct {
	ID          string            // unique node identifier (required)
	Name        string            // display name; defaults to ID
	Category    netgraph.Category // entry / intersection / destination
	Latitude    float64           // geographic latitude
	Longitude   float64           // geographic longitude
	Destination bool              // destination-of-interest flag
}

// EdgeRecord is the plain construction input for one directed road
// segment (or a pair of them, when Bidirectional is set).
type EdgeRecord struct {
	From          string  // source node ID (must exist)
	To            string  // destination node ID (must exist)
	Distance      float64 // physical length (> 0, or derivable)
	TravelTime    float64 // base travel time; 0 means "default to distance"
	Capacity      float64 // vehicle capacity; 0 means netgraph.DefaultCapacity
	SpeedLimit    float64 // optional speed limit metadata
	RoadClass     string  // optional road-class tag
	Bidirectional bool    // insert the symmetric reverse edge as well
}

// Options configures Build.
type Options struct {
	// GeodesicDistance derives a missing edge distance from the haversine
	// distance between the endpoints' coordinates.
	GeodesicDistance bool
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithGeodesicDistance enables haversine derivation of missing edge
// distances from node coordinates (result in kilometers).
func WithGeodesicDistance() Option {
	return func(o *Options) { o.GeodesicDistance = true }
}
