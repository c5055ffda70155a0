// Package feed implements the client for the NHL web API, the
// authoritative source the pipeline reconciles against.
//
// Three snapshots are served:
//
//  1. Current rosters: the standings endpoint yields the active team
//     list, the per-team roster endpoint yields every assignment.
//  2. Current season statistics: skater and goalie summary rows from
//     the stats REST API.
//  3. Player detail: biographical data and historical season splits
//     for new call-ups, written straight into the detail staging slots
//     of the target store rather than returned to the caller.
//
// The client is stateless with respect to any target store, so one
// instance is shared across all sequential target runs. Requests carry
// a hard HTTP timeout; there is deliberately no retry or backoff here,
// a failed fetch fails the run.
package feed
