// Package buffer provides the versioned text buffer the token cache scans.
// It serves as the host-side collaborator: a mutable text store that assigns
// an opaque, monotonically advancing RevisionID on every edit and hands out
// immutable snapshots.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Revision tracking: every edit bumps the revision
//   - Read-only snapshots pinned to a revision
//   - Coordinate conversion between byte offsets and line/column points
//   - Change notifications describing applied edits
//
// Basic usage:
//
//	buf := buffer.New("key: value\n")
//
//	// Replace a range; the returned notification carries the new
//	// snapshot and the edit positions.
//	note, err := buf.Replace(5, 10, "other")
//
//	// Snapshots are immutable and safe to read concurrently.
//	snap := buf.Snapshot()
//	_ = snap.Text()
//
// The token cache compares its recorded revision against Revision() to
// decide when its token sequence is stale.
package buffer
