package app

import (
	"example.com/jotr/pkg/buffer"
	"example.com/jotr/pkg/search"
)

// wordAtCursor returns the bounds of the word touching the caret.
func (r *Runner) wordAtCursor() (search.Range, bool) {
	if r.Buf == nil {
		return search.Range{}, false
	}
	start, end, ok := buffer.WordBounds(r.Buf, r.Cursor)
	return search.Range{Start: start, End: end}, ok
}

// SelectWord selects the word under the caret.
func (r *Runner) SelectWord() {
	if w, ok := r.wordAtCursor(); ok {
		r.selectRange(w, false)
	}
}
