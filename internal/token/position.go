package token

import "fmt"

// ByteOffset represents an absolute byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Position is an absolute coordinate in the buffer: the byte offset plus the
// line and column derived from it. Line and Column are 0-indexed; Column is
// measured in bytes from the start of the line.
//
// Positions are totally ordered by Offset alone. Line and Column are carried
// for consumers (diagnostics, rendering) and never participate in ordering.
type Position struct {
	Offset ByteOffset
	Line   uint32
	Column uint32
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%d(%d:%d)", p.Offset, p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Only Offset participates in the comparison.
func (p Position) Compare(other Position) int {
	if p.Offset < other.Offset {
		return -1
	}
	if p.Offset > other.Offset {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// IsZero returns true if this is the buffer-start position.
func (p Position) IsZero() bool {
	return p.Offset == 0 && p.Line == 0 && p.Column == 0
}
