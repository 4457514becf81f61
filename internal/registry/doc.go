// Package registry implements the process-wide store for parameters,
// formulas, and narrative sections, together with the provenance and mismatch
// logs that make producer writes auditable.
//
// # Lifecycle
//
// A Registry is normally constructed once by the composition root (New) and
// passed to every producer. Default() offers a lazily constructed process
// singleton for callers that have no composition root. Reset exists for tests
// only and must never be reachable from a production call path.
//
// # Invariants enforced here
//
//   - An entry whose status is ESTABLISHED may only be replaced by a write
//     whose source is itself an "ESTABLISHED:<citation>" marker. Any other
//     write to that path fails with ErrImmutable and leaves the store
//     unchanged.
//   - Every other overwrite is compared against the prior value with a 1%
//     relative tolerance (exact equality for non-numeric values). A
//     difference beyond tolerance appends a mismatch record and logs a
//     warning, but the write proceeds: last write wins.
//   - Provenance is append-only: every successful write adds its source to
//     the path's provenance list, in order.
//
// # Concurrency
//
// Producers execute sequentially today, but the store is guarded by a single
// RWMutex so the full SetParameter sequence (read old value, tolerance check,
// mismatch append, upsert, provenance append) is atomic even if producers are
// ever run in parallel. Reset must not be called while producers are writing.
package registry
