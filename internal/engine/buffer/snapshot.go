package buffer

import (
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"

	"github.com/dshills/scanline/internal/token"
)

// Snapshot provides a read-only view of a buffer at a specific revision.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text       string
	lineStarts []ByteOffset
	revision   RevisionID
}

// NewSnapshot builds a standalone snapshot over the given text.
// Useful for tests and for hosts that version text outside a Buffer.
func NewSnapshot(text string, revision RevisionID) *Snapshot {
	return &Snapshot{
		text:       text,
		lineStarts: computeLineStarts(text),
		revision:   revision,
	}
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the half-open byte range [start, end),
// clamped to the snapshot bounds.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > ByteOffset(len(s.text)) {
		end = ByteOffset(len(s.text))
	}
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// RevisionID returns the revision this snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revision
}

// IsEmpty returns true if the snapshot has no content.
func (s *Snapshot) IsEmpty() bool {
	return len(s.text) == 0
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(s.lineStarts))
	if err != nil {
		panic(fmt.Errorf("buffer: line count overflow: %w", err))
	}
	return n
}

// LineStartOffset returns the byte offset at which the line begins.
// Out-of-range lines clamp to the snapshot length.
func (s *Snapshot) LineStartOffset(line uint32) ByteOffset {
	if int(line) >= len(s.lineStarts) {
		return s.Len()
	}
	return s.lineStarts[line]
}

// LineEndOffset returns the byte offset of the end of the line, before its
// line break.
func (s *Snapshot) LineEndOffset(line uint32) ByteOffset {
	if int(line)+1 < len(s.lineStarts) {
		end := s.lineStarts[line+1] - 1 // before '\n'
		if end > 0 && s.text[end-1] == '\r' {
			end--
		}
		return end
	}
	return s.Len()
}

// LineText returns the text of a specific line without its line break.
func (s *Snapshot) LineText(line uint32) string {
	if int(line) >= len(s.lineStarts) {
		return ""
	}
	return s.text[s.LineStartOffset(line):s.LineEndOffset(line)]
}

// OffsetToPoint converts a byte offset to a line/column position.
// Offsets are clamped to the snapshot bounds.
func (s *Snapshot) OffsetToPoint(offset ByteOffset) token.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > s.Len() {
		offset = s.Len()
	}
	// First line starting after offset; the offset's line is the one before.
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	line, err := safecast.Conv[uint32](i - 1)
	if err != nil {
		panic(fmt.Errorf("buffer: line overflow: %w", err))
	}
	col, err := safecast.Conv[uint32](offset - s.lineStarts[i-1])
	if err != nil {
		panic(fmt.Errorf("buffer: column overflow: %w", err))
	}
	return token.Position{Offset: offset, Line: line, Column: col}
}

// PointToOffset converts a line/column position to a byte offset.
// The column is clamped to the line length.
func (s *Snapshot) PointToOffset(line, column uint32) ByteOffset {
	if int(line) >= len(s.lineStarts) {
		return s.Len()
	}
	start := s.lineStarts[line]
	end := s.LineEndOffset(line)
	off := start + ByteOffset(column)
	if off > end {
		off = end
	}
	return off
}

// String returns a short description for debugging.
func (s *Snapshot) String() string {
	preview := s.text
	if len(preview) > 24 {
		preview = preview[:24] + "..."
	}
	return fmt.Sprintf("Snapshot(rev=%d, len=%d, %q)", s.revision, len(s.text), strings.ReplaceAll(preview, "\n", "\\n"))
}
