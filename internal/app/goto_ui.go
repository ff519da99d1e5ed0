package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GoToLine moves the caret to the start of line n (1-based). Lines past the
// end are rejected.
func (r *Runner) GoToLine(n int) error {
	lines := len(r.Buf.Lines())
	if n < 1 || n > lines {
		return fmt.Errorf("line number out of range [1, %d]", lines)
	}
	start, _ := r.Buf.LineAt(n - 1)
	r.clearSelection()
	r.Cursor = start
	r.ensureCursorVisible()
	return nil
}

// runGoToPrompt prompts for a line number and moves the caret there.
func (r *Runner) runGoToPrompt() {
	line, _ := r.lineCol()
	r.runLinePrompt("Go to line: ", strconv.Itoa(line+1), func(input string) error {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return errors.New("not a line number")
		}
		return r.GoToLine(n)
	})
}
