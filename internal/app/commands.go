package app

// command is an editor action reachable from the keymap, the command
// palette and the menu bar.
type command struct {
	name   string // keymap name
	title  string // label shown in menus
	action func() bool
}

func (r *Runner) commands() []command {
	return []command{
		{name: "new", title: "New", action: func() bool { r.NewFile(); return false }},
		{name: "open", title: "Open...", action: func() bool { r.runOpenPrompt(); return false }},
		{name: "save", title: "Save", action: func() bool { r.SaveFile(); return false }},
		{name: "saveas", title: "Save As...", action: func() bool { r.runSaveAsPrompt(); return false }},
		{name: "quit", title: "Exit", action: r.Exit},

		{name: "undo", title: "Undo", action: func() bool { r.Undo(); return false }},
		{name: "redo", title: "Redo", action: func() bool { r.Redo(); return false }},
		{name: "cut", title: "Cut", action: func() bool { r.Cut(); return false }},
		{name: "copy", title: "Copy", action: func() bool { r.Copy(); return false }},
		{name: "paste", title: "Paste", action: func() bool { r.Paste(); return false }},
		{name: "delete", title: "Delete", action: func() bool { r.DeleteSelection(); return false }},
		{name: "selectall", title: "Select All", action: func() bool { r.SelectAll(); return false }},
		{name: "selectword", title: "Select Word", action: func() bool { r.SelectWord(); return false }},
		{name: "find", title: "Find...", action: func() bool { r.runFinder(FinderFind); return false }},
		{name: "findnext", title: "Find Next", action: func() bool { r.FindAgain(false); return false }},
		{name: "findprev", title: "Find Previous", action: func() bool { r.FindAgain(true); return false }},
		{name: "replace", title: "Replace...", action: func() bool { r.runFinder(FinderReplace); return false }},
		{name: "goto", title: "Go To Line...", action: func() bool { r.runGoToPrompt(); return false }},

		{name: "zoomin", title: "Zoom In", action: func() bool { r.ZoomIn(); return false }},
		{name: "zoomout", title: "Zoom Out", action: func() bool { r.ZoomOut(); return false }},
		{name: "zoomreset", title: "Restore Default Zoom", action: func() bool { r.ResetZoom(); return false }},
		{name: "wordwrap", title: "Word Wrap", action: func() bool { r.ToggleWordWrap(); return false }},
		{name: "statusbar", title: "Status Bar", action: func() bool { r.ToggleStatusBar(); return false }},
		{name: "theme", title: "Next Theme", action: func() bool { r.NextTheme(); return false }},
		{name: "themeprev", title: "Previous Theme", action: func() bool { r.PrevTheme(); return false }},

		{name: "help", title: "View Help", action: func() bool { r.ShowHelp = true; return false }},
		{name: "about", title: "About jotr", action: func() bool { r.ShowAbout = true; return false }},
	}
}

// commandByName looks up a command by its keymap name.
func (r *Runner) commandByName(name string) (command, bool) {
	for _, c := range r.commands() {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// commandLabel returns the menu label of a command with its key binding.
func (r *Runner) commandLabel(c command) string {
	if kb, ok := r.Keymap[c.name]; ok {
		return c.title + "  (" + kb.String() + ")"
	}
	return c.title
}
