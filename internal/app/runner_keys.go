package app

import (
	"example.com/jotr/pkg/buffer"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	r.Status = ""
	if quit, ok := r.runBoundCommand(ev); ok {
		return quit
	}
	mods := ev.Modifiers()
	shift := mods&tcell.ModShift != 0
	ctrl := mods&tcell.ModCtrl != 0
	alt := mods&tcell.ModAlt != 0

	switch ev.Key() {
	case tcell.KeyLeft:
		switch {
		case r.hasSelection() && !shift:
			r.moveCursorTo(r.Selection().Start, false)
		case ctrl:
			r.moveCursorTo(buffer.PrevWordStart(r.Buf, r.Cursor), shift)
		default:
			r.moveCursorTo(r.Cursor-1, shift)
		}
	case tcell.KeyRight:
		switch {
		case r.hasSelection() && !shift:
			r.moveCursorTo(r.Selection().End, false)
		case ctrl:
			r.moveCursorTo(buffer.NextWordStart(r.Buf, r.Cursor), shift)
		default:
			r.moveCursorTo(r.Cursor+1, shift)
		}
	case tcell.KeyUp:
		r.moveVertical(-1, shift)
	case tcell.KeyDown:
		r.moveVertical(1, shift)
	case tcell.KeyPgUp:
		r.moveVertical(-r.pageSize(), shift)
	case tcell.KeyPgDn:
		r.moveVertical(r.pageSize(), shift)
	case tcell.KeyHome:
		if ctrl {
			r.moveCursorTo(0, shift)
		} else {
			start, _ := r.currentLineBounds()
			r.moveCursorTo(start, shift)
		}
	case tcell.KeyEnd:
		if ctrl {
			r.moveCursorTo(r.Buf.Len(), shift)
		} else {
			line, _ := r.lineCol()
			r.moveCursorTo(r.lineEnd(line), shift)
		}
	case tcell.KeyEnter:
		r.insertText("\n")
	case tcell.KeyTab:
		r.insertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.backspace()
	case tcell.KeyDelete:
		r.deleteForward()
	case tcell.KeyEsc:
		r.clearSelection()
	case tcell.KeyRune:
		switch {
		case alt && (ev.Rune() == 'm' || ev.Rune() == 'M'):
			return r.runMnemonicMenu()
		case !ctrl && !alt:
			r.insertText(string(ev.Rune()))
		}
	}
	r.ensureCursorVisible()
	return false
}

// moveVertical moves the caret delta lines, extending the selection when
// extend is set.
func (r *Runner) moveVertical(delta int, extend bool) {
	if extend {
		r.extendSelection()
	} else {
		r.clearSelection()
	}
	r.moveCursorVertical(delta)
	if r.Anchor == r.Cursor {
		r.clearSelection()
	}
}

// pageSize is the number of text rows on screen.
func (r *Runner) pageSize() int {
	_, h := r.textArea()
	return max(1, h-1)
}

// runBoundCommand runs the command bound to ev, if any. ok reports whether a
// binding matched.
func (r *Runner) runBoundCommand(ev *tcell.EventKey) (quit, ok bool) {
	for _, c := range r.commands() {
		if r.matchCommand(ev, c.name) {
			r.Logger.Event("action", map[string]any{"name": c.name})
			return c.action(), true
		}
	}
	switch {
	case r.matchCommand(ev, "menu"):
		return r.runCommandMenu(), true
	case r.matchCommand(ev, "menubar"):
		return r.runMnemonicMenu(), true
	}
	return false, false
}

// matchCommand reports whether ev triggers the named keymap entry.
func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	kb, ok := r.Keymap[name]
	return ok && kb.Matches(ev)
}
