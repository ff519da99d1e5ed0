package app

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

type mnemonicNode struct {
	key      rune
	name     string
	action   func() bool
	children []*mnemonicNode
}

// menuItem binds a mnemonic key to a command name.
type menuItem struct {
	key  rune
	name string
}

var menuBar = []struct {
	key   rune
	name  string
	items []menuItem
}{
	{'f', "File", []menuItem{{'n', "new"}, {'o', "open"}, {'s', "save"}, {'a', "saveas"}, {'x', "quit"}}},
	{'e', "Edit", []menuItem{
		{'u', "undo"}, {'y', "redo"}, {'t', "cut"}, {'c', "copy"}, {'p', "paste"}, {'l', "delete"},
		{'f', "find"}, {'n', "findnext"}, {'v', "findprev"}, {'r', "replace"}, {'g', "goto"}, {'a', "selectall"}, {'w', "selectword"},
	}},
	{'v', "View", []menuItem{{'i', "zoomin"}, {'o', "zoomout"}, {'d', "zoomreset"}, {'w', "wordwrap"}, {'s', "statusbar"}, {'t', "theme"}}},
	{'h', "Help", []menuItem{{'h', "help"}, {'a', "about"}}},
}

func (r *Runner) mnemonicMenu() []*mnemonicNode {
	nodes := make([]*mnemonicNode, 0, len(menuBar))
	for _, m := range menuBar {
		n := &mnemonicNode{key: m.key, name: m.name}
		for _, it := range m.items {
			c, ok := r.commandByName(it.name)
			if !ok {
				continue
			}
			n.children = append(n.children, &mnemonicNode{key: it.key, name: r.commandLabel(c), action: c.action})
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// runMnemonicMenu walks the File / Edit / View / Help tree by mnemonic
// keys. Space switches to the command palette. It returns true if the
// chosen command requests to quit.
func (r *Runner) runMnemonicMenu() bool {
	if !r.hasInput() {
		return false
	}
	root := &mnemonicNode{children: r.mnemonicMenu()}
	node := root
	for {
		var lines []string
		if node == root {
			line := "Menu:"
			for _, child := range node.children {
				line += fmt.Sprintf("  %c - %s", child.key, child.name)
			}
			lines = []string{line}
		} else {
			lines = []string{node.name + ":"}
			for _, child := range node.children {
				lines = append(lines, fmt.Sprintf(" %c - %s", child.key, child.name))
			}
		}
		r.setMiniBuffer(lines)
		r.draw(nil)

		ev := r.waitEvent()
		if ev == nil {
			r.clearMiniBuffer()
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case r.isCancelKey(kev):
			if node != root {
				node = root
				continue
			}
			r.clearMiniBuffer()
			return false
		case kev.Key() == tcell.KeyRune && kev.Rune() == ' ' && kev.Modifiers() == 0:
			r.clearMiniBuffer()
			return r.runCommandMenu()
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&tcell.ModCtrl == 0:
			ch := unicode.ToLower(kev.Rune())
			var next *mnemonicNode
			for _, child := range node.children {
				if child.key == ch {
					next = child
					break
				}
			}
			if next == nil {
				continue
			}
			if len(next.children) > 0 {
				node = next
				continue
			}
			r.clearMiniBuffer()
			r.Logger.Event("action", map[string]any{"name": next.name, "via": "menu"})
			return next.action()
		}
	}
}
