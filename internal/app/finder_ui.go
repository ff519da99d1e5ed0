package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"example.com/jotr/pkg/search"
	"github.com/gdamore/tcell/v2"
)

// FinderMode selects the layout of the Find/Replace dialog.
type FinderMode int

const (
	FinderFind FinderMode = iota
	FinderReplace
)

// Finder keeps the Find/Replace options and the last pattern between
// dialog openings.
type Finder struct {
	Query       search.Query
	Replacement string
}

// queryFor returns the query used by mode. Replace always runs down the
// document, as its dialog has no direction toggle.
func (f Finder) queryFor(mode FinderMode) search.Query {
	q := f.Query
	if mode == FinderReplace {
		q.Direction = search.Forward
	}
	return q
}

// findNext selects the next match of q relative to the caret and selection.
// It reports whether a match was found; failures go to the status bar.
func (r *Runner) findNext(q search.Query) bool {
	text := r.Text()
	cursor := search.CursorFor(r.Selection(), q.Direction)
	rg, ok, err := search.FindNext(text, cursor, q)
	if err != nil {
		r.reportPatternError("find.error", q, err)
		return false
	}
	if !ok {
		r.reportNotFound(q)
		return false
	}
	r.selectRange(rg, q.Direction == search.Backward)
	r.Logger.Event("find.next", map[string]any{"pattern": q.Pattern, "direction": q.Direction.String(), "start": rg.Start, "end": rg.End})
	return true
}

// replaceCurrent replaces the selection when it matches q and selects the
// following match. A selection that is not a match only triggers a search.
func (r *Runner) replaceCurrent(q search.Query, replacement string) bool {
	sel := r.Selection()
	res, err := search.ReplaceCurrent(r.Text(), sel, q, replacement)
	if err != nil {
		r.reportPatternError("replace.error", q, err)
		return false
	}
	if res.Replaced {
		inserted := string([]rune(res.Text)[res.Inserted.Start:res.Inserted.End])
		r.replaceRange(sel.Start, sel.End, inserted)
		r.Logger.Event("replace.current", map[string]any{"pattern": q.Pattern, "start": res.Inserted.Start, "end": res.Inserted.End})
	}
	if !res.Found {
		r.reportNotFound(q)
		return res.Replaced
	}
	r.selectRange(res.Next, q.Direction == search.Backward)
	return true
}

// replaceAll substitutes every match of q as a single undoable edit and
// returns the number of replacements.
func (r *Runner) replaceAll(q search.Query, replacement string) int {
	text := r.Text()
	out, n, err := search.ReplaceAll(text, q, replacement)
	if err != nil {
		r.reportPatternError("replace.error", q, err)
		return 0
	}
	if n == 0 {
		r.reportNotFound(q)
		return 0
	}
	cursor := r.Cursor
	r.replaceRange(0, r.Buf.Len(), out)
	r.Cursor = min(cursor, r.Buf.Len())
	r.setStatus(fmt.Sprintf("Replaced %d occurrence(s)", n))
	r.Logger.Event("replace.all", map[string]any{"pattern": q.Pattern, "count": n})
	r.ensureCursorVisible()
	return n
}

// FindAgain repeats the last search, in the opposite direction when
// reverse is set. Without a previous search it opens the Find dialog.
func (r *Runner) FindAgain(reverse bool) {
	q := r.Finder.Query
	if q.Pattern == "" {
		r.runFinder(FinderFind)
		return
	}
	if reverse {
		q.Direction = q.Direction.Reverse()
	}
	r.findNext(q)
}

func (r *Runner) reportNotFound(q search.Query) {
	r.setStatus(fmt.Sprintf("Cannot find %q", q.Pattern))
	r.Logger.Event("find.notfound", map[string]any{"pattern": q.Pattern, "direction": q.Direction.String()})
}

func (r *Runner) reportPatternError(event string, q search.Query, err error) {
	var pe *search.PatternError
	if errors.As(err, &pe) {
		r.setStatus("Invalid pattern: " + pe.Err.Error())
	} else {
		r.setStatus(err.Error())
	}
	r.Logger.Error(event, err, map[string]any{"pattern": q.Pattern})
}

// initialPattern seeds the dialog with a single-line selection, the last
// pattern, or the word under the caret.
func (r *Runner) initialPattern() string {
	if s := r.selectedText(); s != "" && !strings.Contains(s, "\n") {
		return s
	}
	if r.Finder.Query.Pattern != "" {
		return r.Finder.Query.Pattern
	}
	if w, ok := r.wordAtCursor(); ok {
		return string(r.Buf.Slice(w.Start, w.End))
	}
	return ""
}

// finderLines renders the dialog into mini-buffer lines.
func finderLines(mode FinderMode, f Finder) []string {
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	q := f.Query
	lines := []string{"Find what: " + q.Pattern}
	if mode == FinderReplace {
		lines = append(lines, "Replace with: "+f.Replacement)
	}
	opts := fmt.Sprintf("%s Match case (Alt+C)  %s Regex (Alt+R)  %s Wrap around (Alt+W)",
		check(q.CaseSensitive), check(q.Regex), check(q.WrapAround))
	if mode == FinderFind {
		opts += "  Direction: " + q.Direction.String() + " (Alt+D)"
		lines = append(lines, opts, "Enter: Find Next  Esc: Close")
	} else {
		lines = append(lines, opts, "Enter: Find Next  Ctrl+R: Replace  Ctrl+A: Replace All  Tab: Next field  Esc: Close")
	}
	return lines
}

// runFinder runs the Find or Replace dialog in the mini-buffer until it is
// closed. Options and fields persist in r.Finder.
func (r *Runner) runFinder(mode FinderMode) {
	if !r.hasInput() {
		return
	}
	defer r.closePrompt()
	r.Finder.Query.Pattern = r.initialPattern()
	focus := 0 // 0: find field, 1: replace field
	for {
		r.setMiniBuffer(finderLines(mode, r.Finder))
		r.promptLine = focus + 1
		r.draw(r.finderHighlights(mode))

		ev := r.waitEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		field := &r.Finder.Query.Pattern
		if focus == 1 {
			field = &r.Finder.Replacement
		}
		alt := kev.Modifiers()&tcell.ModAlt != 0
		switch {
		case r.isCancelKey(kev):
			return
		case kev.Key() == tcell.KeyEnter:
			r.Status = ""
			r.findNext(r.Finder.queryFor(mode))
		case mode == FinderReplace && isCtrl(kev, 'r'):
			r.Status = ""
			r.replaceCurrent(r.Finder.queryFor(mode), r.Finder.Replacement)
		case mode == FinderReplace && isCtrl(kev, 'a'):
			r.Status = ""
			r.replaceAll(r.Finder.queryFor(mode), r.Finder.Replacement)
		case mode == FinderReplace && (kev.Key() == tcell.KeyTab || kev.Key() == tcell.KeyBacktab || kev.Key() == tcell.KeyUp || kev.Key() == tcell.KeyDown):
			focus = 1 - focus
		case kev.Key() == tcell.KeyRune && alt:
			r.toggleFinderOption(mode, unicode.ToLower(kev.Rune()))
		case kev.Key() == tcell.KeyBackspace || kev.Key() == tcell.KeyBackspace2:
			if rs := []rune(*field); len(rs) > 0 {
				*field = string(rs[:len(rs)-1])
			}
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&tcell.ModCtrl == 0:
			*field += string(kev.Rune())
		}
	}
}

func (r *Runner) toggleFinderOption(mode FinderMode, key rune) {
	q := &r.Finder.Query
	switch key {
	case 'c':
		q.CaseSensitive = !q.CaseSensitive
	case 'r':
		q.Regex = !q.Regex
	case 'w':
		q.WrapAround = !q.WrapAround
	case 'd':
		if mode == FinderFind {
			q.Direction = q.Direction.Reverse()
		}
	}
}

// finderHighlights returns every match of the dialog's pattern, or nil
// while the pattern is empty or invalid.
func (r *Runner) finderHighlights(mode FinderMode) []search.Range {
	q := r.Finder.queryFor(mode)
	if q.Pattern == "" {
		return nil
	}
	matches, err := search.FindAll(r.Text(), q)
	if err != nil {
		return nil
	}
	return matches
}

// isCtrl reports whether ev is Ctrl+letter.
func isCtrl(ev *tcell.EventKey, letter rune) bool {
	if ev.Key() == tcell.Key(letter-'a'+1) {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == letter
}
