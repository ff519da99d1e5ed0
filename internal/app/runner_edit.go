package app

import (
	"example.com/jotr/pkg/search"
)

// Selection returns the selected range, normalized so Start <= End. It is
// empty when nothing is selected.
func (r *Runner) Selection() search.Range {
	if r.Anchor < 0 || r.Anchor == r.Cursor {
		return search.Range{Start: r.Cursor, End: r.Cursor}
	}
	return search.Range{Start: r.Anchor, End: r.Cursor}.Normalize()
}

func (r *Runner) hasSelection() bool {
	return r.Anchor >= 0 && r.Anchor != r.Cursor
}

func (r *Runner) clearSelection() {
	r.Anchor = -1
}

// selectRange selects rg with the caret at its end, or at its start when
// backward is set so a following backward search continues before it.
func (r *Runner) selectRange(rg search.Range, backward bool) {
	rg = rg.Normalize()
	if backward {
		r.Anchor, r.Cursor = rg.End, rg.Start
	} else {
		r.Anchor, r.Cursor = rg.Start, rg.End
	}
	r.ensureCursorVisible()
}

// extendSelection starts a selection at the caret if there is none.
func (r *Runner) extendSelection() {
	if r.Anchor < 0 {
		r.Anchor = r.Cursor
	}
}

// selectedText returns the text covered by the selection.
func (r *Runner) selectedText() string {
	sel := r.Selection()
	if sel.Empty() {
		return ""
	}
	return string(r.Buf.Slice(sel.Start, sel.End))
}

// replaceRange substitutes [start,end) with text, records history and
// leaves the caret after the inserted text.
func (r *Runner) replaceRange(start, end int, text string) {
	if start < 0 {
		start = 0
	}
	if end > r.Buf.Len() {
		end = r.Buf.Len()
	}
	if start > end {
		start, end = end, start
	}
	old := string(r.Buf.Slice(start, end))
	if old == "" && text == "" {
		return
	}
	if err := r.Buf.Replace(start, end, []rune(text)); err != nil {
		r.Logger.Error("edit.error", err, map[string]any{"start": start, "end": end})
		return
	}
	if r.History != nil {
		switch {
		case old == "":
			r.History.RecordInsert(start, text)
		case text == "":
			r.History.RecordDelete(start, old)
		default:
			r.History.RecordReplace(start, old, text)
		}
	}
	r.Cursor = start + len([]rune(text))
	r.clearSelection()
}

// insertText inserts text at the caret, replacing the selection if any.
func (r *Runner) insertText(text string) {
	sel := r.Selection()
	if text == "" && sel.Empty() {
		return
	}
	r.replaceRange(sel.Start, sel.End, text)
}

// deleteRange deletes [start,end) and records it for undo.
func (r *Runner) deleteRange(start, end int) {
	r.replaceRange(start, end, "")
	r.Cursor = min(start, end)
	if r.Cursor < 0 {
		r.Cursor = 0
	}
}

// backspace deletes the selection or the rune before the caret.
func (r *Runner) backspace() {
	if r.hasSelection() {
		sel := r.Selection()
		r.deleteRange(sel.Start, sel.End)
		return
	}
	r.clearSelection()
	if r.Cursor > 0 {
		r.deleteRange(r.Cursor-1, r.Cursor)
	}
}

// deleteForward deletes the selection or the rune at the caret.
func (r *Runner) deleteForward() {
	if r.hasSelection() {
		sel := r.Selection()
		r.deleteRange(sel.Start, sel.End)
		return
	}
	r.clearSelection()
	if r.Cursor < r.Buf.Len() {
		r.deleteRange(r.Cursor, r.Cursor+1)
	}
}

// lineCol returns the caret's 0-based line and column.
func (r *Runner) lineCol() (line, col int) {
	return r.Buf.LineCol(r.Cursor)
}

// currentLineBounds returns the rune start and end indices for the caret's line.
func (r *Runner) currentLineBounds() (start, end int) {
	line, _ := r.lineCol()
	return r.Buf.LineAt(line)
}

// lineEnd returns the offset of the end of a line's text, before its '\n'.
func (r *Runner) lineEnd(line int) int {
	start, end := r.Buf.LineAt(line)
	if end > start && r.Buf.RuneAt(end-1) == '\n' {
		end--
	}
	return end
}

// moveCursorVertical moves the caret up or down by delta lines, preserving
// the column when possible.
func (r *Runner) moveCursorVertical(delta int) {
	line, col := r.lineCol()
	target := line + delta
	if target < 0 {
		r.Cursor = 0
		return
	}
	if last := len(r.Buf.Lines()) - 1; target > last {
		r.Cursor = r.Buf.Len()
		return
	}
	start, _ := r.Buf.LineAt(target)
	r.Cursor = min(start+col, r.lineEnd(target))
}

// moveCursorTo places the caret at pos, extending the selection when
// extend is set and dropping it otherwise.
func (r *Runner) moveCursorTo(pos int, extend bool) {
	if extend {
		r.extendSelection()
	} else {
		r.clearSelection()
	}
	r.Cursor = max(0, min(pos, r.Buf.Len()))
	if r.Anchor == r.Cursor {
		r.clearSelection()
	}
}
