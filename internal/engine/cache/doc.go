// Package cache implements the incremental token cache that sits between a
// versioned text buffer and the stateful scanner.
//
// The cache owns an append-only, ordered token sequence for the current
// buffer revision. Queries are lazy and range-bounded: the sequence grows
// only as far as a query's stopping predicate requires, never eagerly over
// the whole buffer. When the buffer's revision no longer matches the one the
// sequence was built against, the entire sequence is dropped and scanning
// restarts from the beginning of the new text; tokens are never patched or
// partially evicted.
//
// Malformed input never surfaces as a failure. Each lexical error the
// scanner reports is replaced by a synthetic error token at least one byte
// wide (guaranteeing forward progress) and scanning resumes past it. After
// 100 errors within one scan generation, expansion stops for that generation
// and callers observe a truncated sequence; Truncated and Stats expose the
// degradation for hosts that want to surface it.
//
// The cache assumes a single logical owner goroutine and performs no
// internal locking. Iterators are safe to abandon mid-iteration but must be
// re-issued after an intervening edit; an iterator that observes an
// invalidation simply terminates.
package cache
