// File: geojson.go
// Role: GeoJSON export of the network for inspection and map overlays.

package netgraph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ExportGeoJSON renders the network as a GeoJSON feature collection:
// one Point feature per node and one LineString feature per directed
// edge, in ID order. Edge features carry the live congestion snapshot
// (load, capacity, currentTravelTime) taken at call time.
//
// The returned collection is independent of the graph; marshal it with
// encoding/json as needed by the transport layer.
//
// Complexity: O(V log V + E log E)
func (g *Graph) ExportGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	nodes := g.Nodes()
	locations := make(map[string]orb.Point, len(nodes))
	for _, n := range nodes {
		locations[n.ID] = n.Location

		f := geojson.NewFeature(n.Location)
		f.ID = n.ID
		f.Properties["id"] = n.ID
		f.Properties["name"] = n.Name
		f.Properties["category"] = string(n.Category)
		f.Properties["destination"] = n.Destination
		fc.Append(f)
	}

	for _, e := range g.Edges() {
		f := geojson.NewFeature(orb.LineString{locations[e.From], locations[e.To]})
		f.ID = e.ID
		f.Properties["id"] = e.ID
		f.Properties["from"] = e.From
		f.Properties["to"] = e.To
		f.Properties["distance"] = e.Distance
		f.Properties["baseTravelTime"] = e.BaseTravelTime
		f.Properties["capacity"] = e.Capacity
		f.Properties["load"] = e.Load
		f.Properties["currentTravelTime"] = e.CurrentTravelTime
		if e.SpeedLimit > 0 {
			f.Properties["speedLimit"] = e.SpeedLimit
		}
		if e.RoadClass != "" {
			f.Properties["roadClass"] = e.RoadClass
		}
		fc.Append(f)
	}

	return fc
}
