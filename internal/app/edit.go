package app

import (
	"errors"
	"strings"

	"example.com/jotr/pkg/buffer"
	"example.com/jotr/pkg/history"
)

// Undo reverts the most recent edit.
func (r *Runner) Undo() {
	r.performHistory("undo", r.History.Undo)
}

// Redo reapplies the most recently undone edit.
func (r *Runner) Redo() {
	r.performHistory("redo", r.History.Redo)
}

func (r *Runner) performHistory(action string, op func(buf buffer.TextStorage, cursor *int) error) {
	if r.History == nil {
		return
	}
	r.clearSelection()
	if err := op(r.Buf, &r.Cursor); err != nil {
		if errors.Is(err, history.ErrNothingToUndo) || errors.Is(err, history.ErrNothingToRedo) {
			r.setStatus("Nothing to " + action)
			return
		}
		r.setStatus(action + " failed: " + err.Error())
		r.Logger.Error(action+".error", err, nil)
		return
	}
	r.Logger.Event("action", map[string]any{"name": action, "cursor": r.Cursor, "buffer_len": r.Buf.Len()})
	r.ensureCursorVisible()
}

// Copy places the selection on the clipboard. It reports whether the
// clipboard holds the selection afterwards.
func (r *Runner) Copy() bool {
	text := r.selectedText()
	if text == "" {
		return false
	}
	if err := r.Clipboard.WriteAll(text); err != nil {
		r.setStatus("Copy failed: " + err.Error())
		r.Logger.Error("copy.error", err, nil)
		return false
	}
	return true
}

// Cut copies the selection to the clipboard and deletes it. The selection
// is kept when the copy fails.
func (r *Runner) Cut() {
	if !r.hasSelection() {
		return
	}
	if r.Copy() {
		r.DeleteSelection()
	}
}

// Paste replaces the selection with the clipboard contents.
func (r *Runner) Paste() {
	text, err := r.Clipboard.ReadAll()
	if err != nil {
		r.setStatus("Paste failed: " + err.Error())
		r.Logger.Error("paste.error", err, nil)
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return
	}
	r.insertText(text)
	r.ensureCursorVisible()
}

// DeleteSelection removes the selected text.
func (r *Runner) DeleteSelection() {
	if !r.hasSelection() {
		return
	}
	sel := r.Selection()
	r.deleteRange(sel.Start, sel.End)
}

// SelectAll selects the whole document.
func (r *Runner) SelectAll() {
	r.Anchor = 0
	r.Cursor = r.Buf.Len()
	if r.Cursor == 0 {
		r.clearSelection()
	}
}
