package buffer

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	buf := New("key: value\n")

	if got := buf.Text(); got != "key: value\n" {
		t.Errorf("Text() = %q, want %q", got, "key: value\n")
	}
	if got := buf.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}
	if buf.Revision() == 0 {
		t.Error("new buffer should have a non-zero revision")
	}
}

func TestBufferReplace(t *testing.T) {
	buf := New("key: value")
	before := buf.Revision()

	note, err := buf.Replace(5, 10, "other")
	if err != nil {
		t.Fatalf("Replace() error: %v", err)
	}

	if got := buf.Text(); got != "key: other" {
		t.Errorf("Text() = %q, want %q", got, "key: other")
	}
	if buf.Revision() == before {
		t.Error("Replace should bump the revision")
	}
	if note.Snapshot.RevisionID() != buf.Revision() {
		t.Error("notification snapshot should carry the new revision")
	}
	if len(note.Edits) != 1 || note.Edits[0].OldPos != 5 || note.Edits[0].NewPos != 5 {
		t.Errorf("Edits = %+v, want one span at 5/5", note.Edits)
	}
}

func TestBufferInsertDelete(t *testing.T) {
	buf := New("ab")

	if _, err := buf.Insert(1, "X"); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	if got := buf.Text(); got != "aXb" {
		t.Errorf("after insert Text() = %q, want %q", got, "aXb")
	}

	if _, err := buf.Delete(0, 2); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got := buf.Text(); got != "b" {
		t.Errorf("after delete Text() = %q, want %q", got, "b")
	}
}

func TestBufferApplyErrors(t *testing.T) {
	buf := New("abc")

	if _, err := buf.Replace(2, 1, "x"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Replace(2,1) error = %v, want ErrInvalidRange", err)
	}
	if _, err := buf.Replace(0, 99, "x"); !errors.Is(err, ErrRangeOutOfBounds) {
		t.Errorf("Replace(0,99) error = %v, want ErrRangeOutOfBounds", err)
	}
	if got := buf.Text(); got != "abc" {
		t.Errorf("failed edit should not modify content, got %q", got)
	}
}

func TestBufferTouch(t *testing.T) {
	buf := New("abc")
	before := buf.Revision()

	note := buf.Touch()

	if buf.Revision() == before {
		t.Error("Touch should bump the revision")
	}
	if got := buf.Text(); got != "abc" {
		t.Errorf("Touch should not change content, got %q", got)
	}
	if len(note.Edits) != 1 || note.Edits[0].OldPos != 0 {
		t.Errorf("Touch notification edits = %+v, want one zero span", note.Edits)
	}
}

func TestSnapshotImmutable(t *testing.T) {
	buf := New("one\ntwo\n")
	snap := buf.Snapshot()

	if _, err := buf.Replace(0, 3, "zero"); err != nil {
		t.Fatalf("Replace() error: %v", err)
	}

	if got := snap.Text(); got != "one\ntwo\n" {
		t.Errorf("snapshot changed after edit: %q", got)
	}
	if snap.RevisionID() == buf.Revision() {
		t.Error("old snapshot should not carry the new revision")
	}
}

func TestSnapshotLines(t *testing.T) {
	snap := NewSnapshot("one\ntwo\r\nthree", 1)

	if got := snap.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}

	tests := []struct {
		line uint32
		want string
	}{
		{0, "one"},
		{1, "two"}, // CR stripped
		{2, "three"},
		{9, ""},
	}
	for _, tt := range tests {
		if got := snap.LineText(tt.line); got != tt.want {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSnapshotOffsetToPoint(t *testing.T) {
	snap := NewSnapshot("ab\ncd\n", 1)

	tests := []struct {
		offset ByteOffset
		line   uint32
		column uint32
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2}, // the newline itself
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0}, // end of buffer, start of trailing empty line
	}
	for _, tt := range tests {
		p := snap.OffsetToPoint(tt.offset)
		if p.Line != tt.line || p.Column != tt.column {
			t.Errorf("OffsetToPoint(%d) = %d:%d, want %d:%d", tt.offset, p.Line, p.Column, tt.line, tt.column)
		}
		if p.Offset != tt.offset {
			t.Errorf("OffsetToPoint(%d).Offset = %d", tt.offset, p.Offset)
		}
	}
}

func TestSnapshotPointToOffset(t *testing.T) {
	snap := NewSnapshot("ab\ncd\n", 1)

	if got := snap.PointToOffset(1, 1); got != 4 {
		t.Errorf("PointToOffset(1,1) = %d, want 4", got)
	}
	if got := snap.PointToOffset(0, 99); got != 2 {
		t.Errorf("PointToOffset(0,99) should clamp to line end, got %d", got)
	}
	if got := snap.PointToOffset(99, 0); got != snap.Len() {
		t.Errorf("PointToOffset(99,0) should clamp to buffer end, got %d", got)
	}
}

func TestSnapshotTextRange(t *testing.T) {
	snap := NewSnapshot("abcdef", 1)

	if got := snap.TextRange(2, 4); got != "cd" {
		t.Errorf("TextRange(2,4) = %q, want %q", got, "cd")
	}
	if got := snap.TextRange(-5, 99); got != "abcdef" {
		t.Errorf("TextRange should clamp, got %q", got)
	}
	if got := snap.TextRange(4, 2); got != "" {
		t.Errorf("inverted range should be empty, got %q", got)
	}
}

func TestEditHelpers(t *testing.T) {
	ins := NewInsert(3, "xy")
	if !ins.IsInsert() || ins.IsDelete() || ins.Delta() != 2 {
		t.Errorf("insert edit misclassified: %v", ins)
	}

	del := NewDelete(1, 4)
	if !del.IsDelete() || del.Delta() != -3 {
		t.Errorf("delete edit misclassified: %v", del)
	}

	if !(Edit{Start: 2, End: 2}).IsNoOp() {
		t.Error("empty edit should be a no-op")
	}
}

func TestRevisionIDsUnique(t *testing.T) {
	seen := make(map[RevisionID]bool)
	for i := 0; i < 100; i++ {
		id := NewRevisionID()
		if seen[id] {
			t.Fatalf("duplicate revision ID %d", id)
		}
		seen[id] = true
	}
}
