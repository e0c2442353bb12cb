package buffer

import "sync/atomic"

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision. Equality is the
// only comparison the token cache performs; the ordering exists so hosts can
// reason about which of two notifications is newer.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
