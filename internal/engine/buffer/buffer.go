package buffer

import (
	"strings"
	"sync"

	"github.com/dshills/scanline/internal/token"
)

// ByteOffset is an alias to token.ByteOffset for convenience.
type ByteOffset = token.ByteOffset

// Buffer is a mutable, versioned text store. Every edit bumps the revision
// and produces a ChangeNotification carrying the post-edit snapshot.
//
// Buffer is safe for concurrent use. Snapshots returned from it are
// immutable and may outlive subsequent edits.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset
	revision   RevisionID
}

// New creates a buffer with the given initial text.
func New(text string) *Buffer {
	return &Buffer{
		text:       text,
		lineStarts: computeLineStarts(text),
		revision:   NewRevisionID(),
	}
}

// Text returns the full current content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Len returns the byte length of the current content.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// Revision returns the buffer's current revision.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Snapshot returns an immutable view of the current content.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{
		text:       b.text,
		lineStarts: b.lineStarts,
		revision:   b.revision,
	}
}

// Replace substitutes the half-open byte range [start, end) with newText,
// bumps the revision, and returns the resulting change notification.
func (b *Buffer) Replace(start, end ByteOffset, newText string) (ChangeNotification, error) {
	return b.Apply(Edit{Start: start, End: end, NewText: newText})
}

// Insert inserts text at the given offset.
func (b *Buffer) Insert(offset ByteOffset, text string) (ChangeNotification, error) {
	return b.Apply(Edit{Start: offset, End: offset, NewText: text})
}

// Delete removes the half-open byte range [start, end).
func (b *Buffer) Delete(start, end ByteOffset) (ChangeNotification, error) {
	return b.Apply(Edit{Start: start, End: end})
}

// SetText replaces the entire content.
func (b *Buffer) SetText(text string) ChangeNotification {
	note, _ := b.Apply(Edit{Start: 0, End: b.Len(), NewText: text})
	return note
}

// Touch bumps the revision without changing content, mimicking a host that
// re-versions on no-op edits. The notification carries a single zero-width
// edit at offset 0.
func (b *Buffer) Touch() ChangeNotification {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revision = NewRevisionID()
	return ChangeNotification{
		Snapshot: &Snapshot{text: b.text, lineStarts: b.lineStarts, revision: b.revision},
		Edits:    []EditSpan{{OldPos: 0, NewPos: 0}},
	}
}

// Apply applies the edits in order, each against the content produced by the
// one before it. The revision is bumped once for the whole batch and the
// notification reports one EditSpan per edit.
func (b *Buffer) Apply(edits ...Edit) (ChangeNotification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	spans := make([]EditSpan, 0, len(edits))
	text := b.text
	for _, e := range edits {
		if e.Start > e.End {
			return ChangeNotification{}, ErrInvalidRange
		}
		if e.Start < 0 || e.End > ByteOffset(len(text)) {
			return ChangeNotification{}, ErrRangeOutOfBounds
		}
		var sb strings.Builder
		sb.Grow(len(text) - int(e.End-e.Start) + len(e.NewText))
		sb.WriteString(text[:e.Start])
		sb.WriteString(e.NewText)
		sb.WriteString(text[e.End:])
		text = sb.String()
		spans = append(spans, EditSpan{OldPos: e.Start, NewPos: e.Start})
	}

	b.text = text
	b.lineStarts = computeLineStarts(text)
	b.revision = NewRevisionID()

	return ChangeNotification{
		Snapshot: &Snapshot{text: b.text, lineStarts: b.lineStarts, revision: b.revision},
		Edits:    spans,
	}, nil
}

// computeLineStarts returns the byte offsets at which each line begins.
// Line 0 always starts at offset 0; a line begins after every '\n'.
func computeLineStarts(text string) []ByteOffset {
	starts := []ByteOffset{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return starts
}
