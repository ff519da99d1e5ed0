package app

import (
	"example.com/jotr/pkg/buffer"
	"example.com/jotr/pkg/clipboard"
	"example.com/jotr/pkg/config"
	"example.com/jotr/pkg/history"
	"example.com/jotr/pkg/logs"
	"example.com/jotr/pkg/search"
	"example.com/jotr/pkg/textfile"
	"github.com/gdamore/tcell/v2"
)

// ViewState holds the View menu toggles.
type ViewState struct {
	Zoom      int
	WordWrap  bool
	StatusBar bool
	TabWidth  int
}

// Runner owns the terminal lifecycle, the document and a minimal event loop.
type Runner struct {
	Screen    tcell.Screen
	Buf       *buffer.GapBuffer
	File      textfile.TextFile
	Cursor    int // caret position in runes
	Anchor    int // selection anchor in runes, -1 when nothing is selected
	TopLine   int // first visible screen row
	LeftCol   int // horizontal scroll when word wrap is off
	History   *history.History
	Clipboard clipboard.Clipboard
	Logger    *logs.Logger
	Keymap    map[string]config.Keybinding
	Theme     config.Theme
	View      ViewState
	Finder    Finder
	MiniBuf   []string
	Status    string // one-shot message shown in the status bar
	ShowHelp  bool
	ShowAbout bool

	// promptLine is the 1-based mini-buffer line that ends with the input
	// caret, 0 when no prompt is active.
	promptLine int
	themeIndex int

	// EventCh, when set, replaces Screen.PollEvent as the event source.
	EventCh chan tcell.Event
}

// New creates a Runner with an untitled document configured by cfg.
// A nil cfg means defaults.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Runner{
		Buf:       buffer.NewGapBuffer(0),
		File:      textfile.Untitled(),
		Anchor:    -1,
		History:   history.New(),
		Clipboard: &clipboard.Memory{},
		Logger:    logs.Disabled(),
		Keymap:    cfg.Keymap,
		Theme:     cfg.Theme,
		View: ViewState{
			Zoom:      cfg.View.Zoom,
			WordWrap:  cfg.View.WordWrap,
			StatusBar: cfg.View.StatusBar,
			TabWidth:  cfg.View.TabWidth,
		},
		Finder: Finder{Query: search.Query{
			CaseSensitive: cfg.Search.CaseSensitive,
			Regex:         cfg.Search.Regex,
			WrapAround:    cfg.Search.WrapAround,
		}},
	}
}

// Text returns the current document contents.
func (r *Runner) Text() string {
	return r.Buf.String()
}

// Dirty reports whether the document differs from what was last opened or
// saved.
func (r *Runner) Dirty() bool {
	return r.File.Modified(r.Buf.String())
}

func (r *Runner) setMiniBuffer(lines []string) {
	r.MiniBuf = lines
}

func (r *Runner) clearMiniBuffer() {
	r.MiniBuf = nil
}

func (r *Runner) setStatus(msg string) {
	r.Status = msg
}

// waitEvent returns the next event, or nil when no source is available or
// EventCh has been closed.
func (r *Runner) waitEvent() tcell.Event {
	if r.EventCh != nil {
		ev, ok := <-r.EventCh
		if !ok {
			return nil
		}
		return ev
	}
	if r.Screen == nil {
		return nil
	}
	return r.Screen.PollEvent()
}

// isCancelKey reports whether ev closes a prompt or dialog.
func (r *Runner) isCancelKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEsc
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	if r.Logger != nil {
		r.Logger.Close()
	}
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user exits through the File menu or the quit binding.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	r.Logger.Event("run.start", map[string]any{"file": r.File.Path})
	defer r.Logger.Event("run.end", map[string]any{"file": r.File.Path})

	r.draw(nil)
	for {
		ev := r.waitEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			r.Logger.Event("key", map[string]any{
				"key":       int(ev.Key()),
				"rune":      string(ev.Rune()),
				"modifiers": int(ev.Modifiers()),
			})
			// Help and About are dismissed by any key.
			if r.ShowHelp || r.ShowAbout {
				r.ShowHelp = false
				r.ShowAbout = false
				r.draw(nil)
				continue
			}
			if r.handleKeyEvent(ev) {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
			r.draw(nil)
		case *tcell.EventResize:
			if r.Screen != nil {
				r.Screen.Sync()
			}
			r.draw(nil)
		}
	}
}
