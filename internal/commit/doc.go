// Package commit implements the commit-gathering half of a sync cycle: it
// decides which pending local changes are uploaded in a given batch, in what
// order, and under which capacity limit.
//
// The central type is [BatchScheduler]. A scheduler instance lives for one
// commit session; each call to GatherContributions drains pending changes
// from per-type [Contributor] collaborators, honoring a fixed phase order
// (priority types before regular types) and the hard rule that Nigori
// key-metadata changes are always committed alone.
package commit
