package app

import (
	"sort"

	"example.com/jotr/pkg/config"
)

// themeNames returns the built-in theme names in a stable order.
func themeNames() []string {
	names := make([]string, 0, len(config.BuiltinThemes))
	for name := range config.BuiltinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme cycles to the next built-in theme and applies it.
func (r *Runner) NextTheme() {
	r.stepTheme(1)
}

// PrevTheme cycles to the previous built-in theme and applies it.
func (r *Runner) PrevTheme() {
	r.stepTheme(-1)
}

func (r *Runner) stepTheme(delta int) {
	names := themeNames()
	r.themeIndex = (r.themeIndex + delta + len(names)) % len(names)
	name := names[r.themeIndex]
	r.Theme = config.BuiltinThemes[name]
	r.setStatus("Theme: " + name)
	r.Logger.Event("action", map[string]any{"name": "theme", "theme": name})
}
