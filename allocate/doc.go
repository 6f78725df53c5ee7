// Package allocate converts a set of candidate routes into an exact
// vehicle-count assignment that favors faster routes.
//
// Distribute asks pathfind for up to MaxPaths alternative routes, weights
// each candidate by the reciprocal of its travel time, and assigns each
// route floor(total * weight/totalWeight) vehicles. Flooring can leave a
// remainder; the entire leftover is added to the first candidate — the
// globally shortest route — so the assigned counts always sum exactly to
// the requested total. The exact-sum property is a hard invariant, not a
// heuristic.
//
// "No candidate routes" is an expected outcome, not an error: the plan
// comes back with Success == false and a human-readable Reason, so
// callers can branch without error handling. Errors are reserved for
// invalid inputs (nil graph, unknown endpoints, negative vehicle total).
package allocate
