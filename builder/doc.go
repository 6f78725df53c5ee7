// Package builder constructs a netgraph.Graph from plain node and edge
// records, the construction input shape consumed at service start-up.
//
// Build inserts every node record first, then every edge record, failing
// fast on the first invalid record with a wrapped netgraph sentinel so
// callers can branch with errors.Is. On failure no graph is returned;
// construction is all-or-nothing from the caller's point of view.
//
// With WithGeodesicDistance, an edge record that omits its distance gets
// one derived from the great-circle (haversine) distance between its
// endpoints' coordinates, in kilometers.
package builder
