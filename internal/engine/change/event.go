package change

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/scanline/internal/engine/buffer"
)

// Span is a byte range relative to the buffer's snapshot at emission time.
type Span struct {
	Start  buffer.ByteOffset
	Length buffer.ByteOffset
}

// End returns the exclusive end offset of the span.
func (s Span) End() buffer.ByteOffset {
	return s.Start + s.Length
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// TokensChangedEvent reports that tokens within Span may have changed.
// The span is conservative: everything from the earliest edit to the end of
// the buffer, not a precise diff.
type TokensChangedEvent struct {
	// Revision is the buffer revision the span is relative to.
	Revision buffer.RevisionID

	// Span is the affected byte range.
	Span Span

	// Metadata carries the event ID, timestamp, and source.
	Metadata Metadata
}

// newMetadata builds metadata for an outgoing event.
func newMetadata(source string) Metadata {
	return Metadata{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
	}
}
