package history

import (
	"errors"

	"example.com/jotr/pkg/buffer"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// OpType represents the type of an edit operation.
type OpType int

const (
	InsertOp OpType = iota
	DeleteOp
	ReplaceOp
)

// Operation captures a single edit for undo/redo.
// Pos is a rune index. Text is the inserted or deleted text; for ReplaceOp
// Old is the text that was replaced and Text the text put in its place.
type Operation struct {
	Type OpType
	Pos  int
	Text string
	Old  string
}

// History keeps stacks of past/future operations for undo/redo.
type History struct {
	past   []Operation
	future []Operation
}

// New creates an empty History.
func New() *History { return &History{} }

// RecordInsert records an insertion at pos.
func (h *History) RecordInsert(pos int, text string) {
	if text == "" {
		return
	}
	h.push(Operation{Type: InsertOp, Pos: pos, Text: text})
}

// RecordDelete records a deletion at pos of the given text.
func (h *History) RecordDelete(pos int, text string) {
	if text == "" {
		return
	}
	h.push(Operation{Type: DeleteOp, Pos: pos, Text: text})
}

// RecordReplace records that old at pos was replaced by text, so a single
// undo restores a find/replace substitution.
func (h *History) RecordReplace(pos int, old, text string) {
	if old == text {
		return
	}
	h.push(Operation{Type: ReplaceOp, Pos: pos, Text: text, Old: old})
}

func (h *History) push(op Operation) {
	h.past = append(h.past, op)
	h.future = nil
}

// Clear drops all recorded operations, e.g. after loading a new document.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// CanUndo reports whether there is an operation to undo.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether there is an operation to redo.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Undo applies the inverse of the last operation to buf and moves the
// cursor to where the edit happened.
func (h *History) Undo(buf buffer.TextStorage, cursor *int) error {
	if !h.CanUndo() {
		return ErrNothingToUndo
	}
	op := h.past[len(h.past)-1]
	if err := apply(buf, op.inverse(), cursor); err != nil {
		return err
	}
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, op)
	return nil
}

// Redo reapplies the next operation to buf and updates the cursor.
func (h *History) Redo(buf buffer.TextStorage, cursor *int) error {
	if !h.CanRedo() {
		return ErrNothingToRedo
	}
	op := h.future[len(h.future)-1]
	if err := apply(buf, op, cursor); err != nil {
		return err
	}
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, op)
	return nil
}

func (op Operation) inverse() Operation {
	switch op.Type {
	case InsertOp:
		return Operation{Type: DeleteOp, Pos: op.Pos, Text: op.Text}
	case DeleteOp:
		return Operation{Type: InsertOp, Pos: op.Pos, Text: op.Text}
	default:
		return Operation{Type: ReplaceOp, Pos: op.Pos, Text: op.Old, Old: op.Text}
	}
}

func apply(buf buffer.TextStorage, op Operation, cursor *int) error {
	n := len([]rune(op.Text))
	var err error
	at := op.Pos
	switch op.Type {
	case InsertOp:
		err = buf.Insert(op.Pos, []rune(op.Text))
		at += n
	case DeleteOp:
		err = buf.Delete(op.Pos, op.Pos+n)
	case ReplaceOp:
		err = buf.Replace(op.Pos, op.Pos+len([]rune(op.Old)), []rune(op.Text))
		at += n
	}
	if err != nil {
		return err
	}
	if cursor != nil {
		*cursor = at
	}
	return nil
}
