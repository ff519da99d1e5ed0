package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// runCommandMenu opens a mini-buffer menu listing commands. It supports
// filtering by typing and navigation with Up/Down or Ctrl+P/Ctrl+N. Enter
// executes the highlighted command. It returns true if the command requests
// to quit.
func (r *Runner) runCommandMenu() bool {
	if !r.hasInput() {
		return false
	}
	cmds := r.commands()
	query := ""
	sel := 0
	for {
		filtered := filterCommands(cmds, query)
		sel = max(0, min(sel, len(filtered)-1))
		lines := []string{"Command: " + query}
		// show up to first 10 commands
		for i := 0; i < len(filtered) && i < 10; i++ {
			prefix := "  "
			if i == sel {
				prefix = "> "
			}
			lines = append(lines, prefix+r.commandLabel(filtered[i]))
		}
		r.setMiniBuffer(lines)
		r.promptLine = 1
		r.draw(nil)

		ev := r.waitEvent()
		if ev == nil {
			r.closePrompt()
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case r.isCancelKey(kev):
			r.closePrompt()
			return false
		case kev.Key() == tcell.KeyEnter:
			r.closePrompt()
			if len(filtered) > 0 {
				r.Logger.Event("action", map[string]any{"name": filtered[sel].name, "via": "palette"})
				return filtered[sel].action()
			}
			return false
		case kev.Key() == tcell.KeyBackspace || kev.Key() == tcell.KeyBackspace2:
			if rs := []rune(query); len(rs) > 0 {
				query = string(rs[:len(rs)-1])
				sel = 0
			}
		case kev.Key() == tcell.KeyUp || isCtrl(kev, 'p'):
			if sel > 0 {
				sel--
			}
		case kev.Key() == tcell.KeyDown || isCtrl(kev, 'n'):
			if sel < len(filtered)-1 {
				sel++
			}
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			query += string(kev.Rune())
			sel = 0
		}
	}
}

// filterCommands keeps the commands whose title contains query, ignoring
// case.
func filterCommands(cmds []command, query string) []command {
	if query == "" {
		return cmds
	}
	q := strings.ToLower(query)
	out := make([]command, 0, len(cmds))
	for _, c := range cmds {
		if strings.Contains(strings.ToLower(c.title), q) || strings.Contains(c.name, q) {
			out = append(out, c)
		}
	}
	return out
}
