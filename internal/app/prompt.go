package app

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// PromptResult is the outcome of a mini-buffer prompt. Cancelled is set
// when the user dismissed the prompt; Value is meaningful otherwise.
type PromptResult struct {
	Value     string
	Cancelled bool
}

func cancelled() PromptResult { return PromptResult{Cancelled: true} }

// hasInput reports whether prompts can read events.
func (r *Runner) hasInput() bool {
	return r.Screen != nil || r.EventCh != nil
}

// runLinePrompt reads a line of input after label. Enter accepts once
// validate (if any) succeeds; Esc cancels.
func (r *Runner) runLinePrompt(label, initial string, validate func(string) error) PromptResult {
	if !r.hasInput() {
		return cancelled()
	}
	defer r.closePrompt()
	input := []rune(initial)
	errMsg := ""
	for {
		lines := []string{label + string(input)}
		if errMsg != "" {
			lines = append(lines, errMsg)
		}
		r.setMiniBuffer(lines)
		r.promptLine = 1
		r.draw(nil)

		ev := r.waitEvent()
		if ev == nil {
			return cancelled()
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case r.isCancelKey(kev):
			return cancelled()
		case kev.Key() == tcell.KeyEnter:
			value := string(input)
			if validate != nil {
				if err := validate(value); err != nil {
					errMsg = err.Error()
					continue
				}
			}
			return PromptResult{Value: value}
		case kev.Key() == tcell.KeyBackspace || kev.Key() == tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			input = append(input, kev.Rune())
			errMsg = ""
		}
	}
}

type choice struct {
	key   rune
	label string
}

// runChoicePrompt shows message with single-key choices. The chosen key is
// returned as Value; Esc cancels.
func (r *Runner) runChoicePrompt(message string, choices []choice) PromptResult {
	if !r.hasInput() {
		return cancelled()
	}
	defer r.closePrompt()
	labels := make([]string, 0, len(choices))
	for _, c := range choices {
		labels = append(labels, fmt.Sprintf("[%c] %s", unicode.ToUpper(c.key), c.label))
	}
	r.setMiniBuffer([]string{message, strings.Join(labels, "  ")})
	r.draw(nil)
	for {
		ev := r.waitEvent()
		if ev == nil {
			return cancelled()
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if r.isCancelKey(kev) {
			return cancelled()
		}
		if kev.Key() != tcell.KeyRune {
			continue
		}
		k := unicode.ToLower(kev.Rune())
		for _, c := range choices {
			if c.key == k {
				return PromptResult{Value: string(c.key)}
			}
		}
	}
}

func (r *Runner) closePrompt() {
	r.promptLine = 0
	r.clearMiniBuffer()
}
