package buffer

import "fmt"

// Edit represents a text edit operation: replace the half-open byte range
// [Start, End) with NewText.
type Edit struct {
	Start   ByteOffset
	End     ByteOffset
	NewText string
}

// NewInsert creates an Edit that inserts text at an offset.
func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{Start: offset, End: offset, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end ByteOffset) Edit {
	return Edit{Start: start, End: end}
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Start == e.End && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return e.Start != e.End && e.NewText == ""
}

// IsNoOp returns true if this edit changes nothing.
func (e Edit) IsNoOp() bool {
	return e.Start == e.End && e.NewText == ""
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() ByteOffset {
	return ByteOffset(len(e.NewText)) - (e.End - e.Start)
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	switch {
	case e.IsInsert():
		return fmt.Sprintf("Insert(%d, %q)", e.Start, e.NewText)
	case e.IsDelete():
		return fmt.Sprintf("Delete[%d,%d)", e.Start, e.End)
	default:
		return fmt.Sprintf("Replace[%d,%d) with %q", e.Start, e.End, e.NewText)
	}
}

// EditSpan reports where a single edit landed, as consumed by change
// listeners. OldPos is the edit's position in the pre-edit content, NewPos
// its position in the post-edit content.
type EditSpan struct {
	OldPos ByteOffset
	NewPos ByteOffset
}

// ChangeNotification describes a batch of edits applied to the buffer.
// Snapshot is the post-edit state; a notification is stale when its
// snapshot's revision no longer matches the buffer's live revision.
type ChangeNotification struct {
	Snapshot *Snapshot
	Edits    []EditSpan
}
