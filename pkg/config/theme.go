package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme represents configurable colors for the text area, bars and
// highlights.
type Theme struct {
	TextBackground tcell.Color
	TextForeground tcell.Color

	// Status bar and mini-buffer
	StatusBackground tcell.Color
	StatusForeground tcell.Color
	MiniBackground   tcell.Color
	MiniForeground   tcell.Color

	// Menu bar and popups
	MenuBackground  tcell.Color
	MenuForeground  tcell.Color
	MenuHighlightBG tcell.Color
	MenuHighlightFG tcell.Color

	SelectionBackground tcell.Color
	SelectionForeground tcell.Color

	// Other matches of the active search
	MatchBackground tcell.Color
	MatchForeground tcell.Color
}

// DefaultTheme returns the built-in light-on-dark theme.
func DefaultTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorBlack,
		TextForeground: tcell.ColorWhite,

		StatusBackground: tcell.ColorWhite,
		StatusForeground: tcell.ColorBlack,
		MiniBackground:   tcell.ColorWhite,
		MiniForeground:   tcell.ColorBlack,

		MenuBackground:  tcell.ColorSilver,
		MenuForeground:  tcell.ColorBlack,
		MenuHighlightBG: tcell.ColorBlue,
		MenuHighlightFG: tcell.ColorWhite,

		SelectionBackground: tcell.ColorBlue,
		SelectionForeground: tcell.ColorWhite,

		MatchBackground: tcell.ColorYellow,
		MatchForeground: tcell.ColorBlack,
	}
}

// TerminalTheme follows the terminal's own default colors and only uses
// ANSI palette entries for highlights.
func TerminalTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorDefault,
		TextForeground: tcell.ColorDefault,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorDefault,
		MiniBackground:   tcell.ColorGray,
		MiniForeground:   tcell.ColorDefault,

		MenuBackground:  tcell.ColorGray,
		MenuForeground:  tcell.ColorDefault,
		MenuHighlightBG: tcell.ColorBlue,
		MenuHighlightFG: tcell.ColorDefault,

		SelectionBackground: tcell.ColorBlue,
		SelectionForeground: tcell.ColorDefault,

		MatchBackground: tcell.ColorYellow,
		MatchForeground: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"light": {
		TextBackground: tcell.ColorWhite,
		TextForeground: tcell.ColorBlack,

		StatusBackground: tcell.ColorSilver,
		StatusForeground: tcell.ColorBlack,
		MiniBackground:   tcell.ColorSilver,
		MiniForeground:   tcell.ColorBlack,

		MenuBackground:  tcell.ColorSilver,
		MenuForeground:  tcell.ColorBlack,
		MenuHighlightBG: tcell.ColorNavy,
		MenuHighlightFG: tcell.ColorWhite,

		SelectionBackground: tcell.ColorLightBlue,
		SelectionForeground: tcell.ColorBlack,

		MatchBackground: tcell.ColorYellow,
		MatchForeground: tcell.ColorBlack,
	},
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// themeFromMap builds a Theme from a [theme] table: an optional "name"
// selects a preset and the remaining keys override single colors.
func themeFromMap(m map[string]string) (Theme, error) {
	th := DefaultTheme()
	if name, ok := m["name"]; ok {
		preset, ok := BuiltinThemes[strings.ToLower(name)]
		if !ok {
			return Theme{}, fmt.Errorf("theme.name: unknown theme %q", name)
		}
		th = preset
	}
	fields := map[string]*tcell.Color{
		"text_bg":      &th.TextBackground,
		"text_fg":      &th.TextForeground,
		"status_bg":    &th.StatusBackground,
		"status_fg":    &th.StatusForeground,
		"mini_bg":      &th.MiniBackground,
		"mini_fg":      &th.MiniForeground,
		"menu_bg":      &th.MenuBackground,
		"menu_fg":      &th.MenuForeground,
		"menu_sel_bg":  &th.MenuHighlightBG,
		"menu_sel_fg":  &th.MenuHighlightFG,
		"selection_bg": &th.SelectionBackground,
		"selection_fg": &th.SelectionForeground,
		"match_bg":     &th.MatchBackground,
		"match_fg":     &th.MatchForeground,
	}
	for k, v := range m {
		if k == "name" {
			continue
		}
		dst, ok := fields[k]
		if !ok {
			return Theme{}, fmt.Errorf("theme.%s: unknown color", k)
		}
		if strings.EqualFold(v, "default") {
			*dst = tcell.ColorDefault
			continue
		}
		c := ParseColor(v, tcell.ColorDefault)
		if c == tcell.ColorDefault {
			return Theme{}, fmt.Errorf("theme.%s: invalid color %q", k, v)
		}
		*dst = c
	}
	return th, nil
}
