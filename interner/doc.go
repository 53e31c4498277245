// Package interner implements the process-wide value cache described in
// spec.md §4.5: a sharded, thread-safe, append-only store mapping a
// canonical-form key to a stable integer Handle, plus secondary caches for
// the add/neg/leq operations over handles.
//
// Sharding follows the pattern core.Graph uses, which splits lock
// contention across two named sync.RWMutex (one for vertices, one for
// edges+adjacency); here that idea generalizes to N shards selected by an
// FNV hash of the canonical key, so concurrent interning of unrelated
// values never contends on the same lock.
//
// Handles are never invalidated: Lookup on a Handle returned by Intern is
// valid for the lifetime of the Store. Losing an insert race discards the
// loser's Record and returns the winner's Handle; this is expected under
// concurrent construction and is not an error.
package interner
