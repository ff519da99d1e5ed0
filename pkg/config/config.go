package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// Zoom limits, in percent.
const (
	MinZoom     = 10
	MaxZoom     = 500
	ZoomStep    = 10
	DefaultZoom = 100
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ViewConfig holds the initial state of the View menu.
type ViewConfig struct {
	Zoom      int  `toml:"zoom"`
	WordWrap  bool `toml:"word_wrap"`
	StatusBar bool `toml:"status_bar"`
	TabWidth  int  `toml:"tab_width"`
}

// SearchConfig holds the initial Find/Replace options.
type SearchConfig struct {
	CaseSensitive bool `toml:"case_sensitive"`
	Regex         bool `toml:"regex"`
	WrapAround    bool `toml:"wrap_around"`
}

// Config holds user configuration values.
type Config struct {
	Keymap map[string]Keybinding
	View   ViewConfig
	Search SearchConfig
	Theme  Theme
}

// file mirrors the on-disk TOML layout.
type file struct {
	Keymap map[string]string `toml:"keymap"`
	View   ViewConfig        `toml:"view"`
	Search SearchConfig      `toml:"search"`
	Theme  map[string]string `toml:"theme"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		Keymap: DefaultKeymap(),
		View:   ViewConfig{Zoom: DefaultZoom, StatusBar: true, TabWidth: 4},
		Search: SearchConfig{WrapAround: true},
		Theme:  DefaultTheme(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":      mustParse("Ctrl+Q"),
		"new":       mustParse("Ctrl+N"),
		"open":      mustParse("Ctrl+O"),
		"save":      mustParse("Ctrl+S"),
		"saveas":    mustParse("F12"),
		"find":      mustParse("Ctrl+F"),
		"replace":   mustParse("Ctrl+R"),
		"findnext":  mustParse("F3"),
		"findprev":  mustParse("Shift+F3"),
		"undo":      mustParse("Ctrl+Z"),
		"redo":      mustParse("Ctrl+Y"),
		"cut":       mustParse("Ctrl+X"),
		"copy":      mustParse("Ctrl+C"),
		"paste":     mustParse("Ctrl+V"),
		"selectall": mustParse("Ctrl+A"),
		"goto":      mustParse("Ctrl+G"),
		"menu":      mustParse("Ctrl+T"),
		"menubar":   mustParse("F10"),
		"zoomin":    mustParse("Alt+I"),
		"zoomout":   mustParse("Alt+O"),
		"zoomreset": mustParse("Alt+0"),
		"wordwrap":  mustParse("Alt+Z"),
		"help":      mustParse("F1"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := cfg.apply(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.apply(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(data []byte) error {
	f := file{View: c.View, Search: c.Search}
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for cmd, binding := range f.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return fmt.Errorf("keymap.%s: %w", cmd, err)
		}
		c.Keymap[strings.ToLower(cmd)] = kb
	}
	if f.View.Zoom < MinZoom || f.View.Zoom > MaxZoom {
		return fmt.Errorf("view.zoom %d out of range [%d, %d]", f.View.Zoom, MinZoom, MaxZoom)
	}
	if f.View.TabWidth < 1 || f.View.TabWidth > 16 {
		return fmt.Errorf("view.tab_width %d out of range [1, 16]", f.View.TabWidth)
	}
	c.View = f.View
	c.Search = f.Search
	if len(f.Theme) > 0 {
		th, err := themeFromMap(f.Theme)
		if err != nil {
			return err
		}
		c.Theme = th
	}
	return nil
}

// Path returns the configuration file to use: $JOTR_CONFIG when set,
// otherwise ~/.jotr/config.toml.
func Path() string {
	if p := os.Getenv("JOTR_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jotr", "config.toml")
}

// LoadDefault loads the file named by Path.
func LoadDefault() (*Config, error) {
	p := Path()
	if p == "" {
		return Default(), nil
	}
	return Load(p)
}

var functionKeys = map[string]tcell.Key{
	"f1": tcell.KeyF1, "f2": tcell.KeyF2, "f3": tcell.KeyF3, "f4": tcell.KeyF4,
	"f5": tcell.KeyF5, "f6": tcell.KeyF6, "f7": tcell.KeyF7, "f8": tcell.KeyF8,
	"f9": tcell.KeyF9, "f10": tcell.KeyF10, "f11": tcell.KeyF11, "f12": tcell.KeyF12,
}

// ParseKeybinding converts a textual key description like "Ctrl+S",
// "Alt+W", "F3" or "Shift+F3" into a Keybinding. Letter and digit keys need
// a Ctrl or Alt modifier.
func ParseKeybinding(s string) (Keybinding, error) {
	parts := strings.Split(s, "+")
	var mod tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl":
			mod |= tcell.ModCtrl
		case "alt":
			mod |= tcell.ModAlt
		case "shift":
			mod |= tcell.ModShift
		default:
			return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
		}
	}
	key := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if fk, ok := functionKeys[key]; ok {
		return Keybinding{Key: fk, Mod: mod}, nil
	}
	r := []rune(key)
	if len(r) != 1 || !(r[0] >= 'a' && r[0] <= 'z' || r[0] >= '0' && r[0] <= '9') {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	if mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return Keybinding{}, errors.New("keybinding needs Ctrl or Alt: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: mod}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

const modMask = tcell.ModCtrl | tcell.ModAlt | tcell.ModShift

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	mods := ev.Modifiers() & modMask
	if k.Key != tcell.KeyRune {
		return ev.Key() == k.Key && mods == k.Mod
	}
	if ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == k.Rune && mods&^tcell.ModShift == k.Mod&^tcell.ModShift {
		return true
	}
	if k.Mod&tcell.ModCtrl != 0 && k.Mod&tcell.ModAlt == 0 {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}

// String renders the binding in the form accepted by ParseKeybinding.
func (k Keybinding) String() string {
	var b strings.Builder
	if k.Mod&tcell.ModCtrl != 0 {
		b.WriteString("Ctrl+")
	}
	if k.Mod&tcell.ModAlt != 0 {
		b.WriteString("Alt+")
	}
	if k.Mod&tcell.ModShift != 0 {
		b.WriteString("Shift+")
	}
	if k.Key == tcell.KeyRune {
		b.WriteRune(unicode.ToUpper(k.Rune))
		return b.String()
	}
	for name, fk := range functionKeys {
		if fk == k.Key {
			b.WriteString(strings.ToUpper(name))
			break
		}
	}
	return b.String()
}
