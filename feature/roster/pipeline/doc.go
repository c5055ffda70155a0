// Package pipeline orchestrates the roster and season-stats sync
// against one or more target stores.
//
// One run against one target walks three sub-pipelines in a fixed
// dependency order:
//
//  1. Rosters: fetch the current snapshot, diff it against the store's
//     active roster by player id, stage the snapshot, invoke the roster
//     sync procedure.
//  2. Player detail: only when the diff produced call-ups, fetch their
//     detail into the detail staging slots and invoke the player,
//     season-skater, and season-goalie sync procedures. Skipped
//     entirely otherwise.
//  3. Season stats: fetch skater and goalie summaries, stage both
//     slots, invoke both stats sync procedures.
//
// Ordering is load-bearing: the roster sync must commit before the
// detail pipeline starts, because "new player" is defined relative to
// the post-sync store state. Each procedure invocation commits on its
// own; there is no run-wide transaction.
//
// Every step is sequential. Any failure aborts the current target's
// run, is logged once with full context, and propagates unchanged to
// the Runner, which aborts the remaining targets. The store connection
// is released on every exit path.
package pipeline
