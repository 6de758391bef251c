// Package analysis derives trend and projection reports from ledger snapshots.
//
// Every report is recomputed from a full read of the ledger:
//
//  1. SelectWindow picks the trailing N distinct recorded dates.
//  2. FilterComplete keeps only entities observed on every window date.
//  3. The trend computer takes delta = last - first per entity and ranks it;
//     the projector extrapolates projected = last + delta over a 7-day window.
//
// Ranking is deterministic: entities enter ranking in lexicographic name
// order and all sorts are stable, so equal keys keep name order in both the
// ascending and the descending list.
//
// Short history and empty results are reported through Status, never as
// errors.
package analysis
