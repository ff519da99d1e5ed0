package history

import (
	"errors"
	"testing"

	"example.com/jotr/pkg/buffer"
)

func TestHistory_UndoRedo_InsertDelete(t *testing.T) {
	b := buffer.NewGapBufferFromString("abc")
	h := New()

	// Insert 'X' at position 1: aXbc
	if err := b.Insert(1, []rune("X")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	h.RecordInsert(1, "X")
	cursor := 2

	// Delete 'b' at pos 2: aXc
	del := string(b.Slice(2, 3))
	if err := b.Delete(2, 3); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	h.RecordDelete(2, del)
	if b.String() != "aXc" {
		t.Fatalf("expected aXc, got %q", b.String())
	}

	steps := []struct {
		op   func(buffer.TextStorage, *int) error
		want string
	}{
		{h.Undo, "aXbc"},
		{h.Undo, "abc"},
		{h.Redo, "aXbc"},
		{h.Redo, "aXc"},
	}
	for i, s := range steps {
		if err := s.op(b, &cursor); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if b.String() != s.want {
			t.Fatalf("step %d: expected %q, got %q", i, s.want, b.String())
		}
	}
}

func TestHistory_Replace(t *testing.T) {
	b := buffer.NewGapBufferFromString("one two")
	h := New()
	_ = b.Replace(4, 7, []rune("2"))
	h.RecordReplace(4, "two", "2")
	cursor := 5

	if err := h.Undo(b, &cursor); err != nil {
		t.Fatalf("undo failed: %v", err)
	}
	if b.String() != "one two" || cursor != 7 {
		t.Fatalf("expected 'one two' cursor 7, got %q cursor %d", b.String(), cursor)
	}
	if err := h.Redo(b, &cursor); err != nil {
		t.Fatalf("redo failed: %v", err)
	}
	if b.String() != "one 2" || cursor != 5 {
		t.Fatalf("expected 'one 2' cursor 5, got %q cursor %d", b.String(), cursor)
	}
}

func TestHistory_Empty(t *testing.T) {
	h := New()
	b := buffer.NewGapBuffer(0)
	if err := h.Undo(b, nil); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
	h.RecordInsert(0, "x")
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("expected empty history after Clear")
	}
	if err := h.Redo(b, nil); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("expected ErrNothingToRedo, got %v", err)
	}
}
