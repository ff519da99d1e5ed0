package app

import (
	"fmt"

	"example.com/jotr/pkg/search"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// helpLines lists the default bindings shown by View Help.
var helpLines = []string{
	"jotr help",
	"",
	"File:   Ctrl+N new   Ctrl+O open   Ctrl+S save   F12 save as   Ctrl+Q exit",
	"Edit:   Ctrl+Z undo  Ctrl+Y redo   Ctrl+X cut    Ctrl+C copy   Ctrl+V paste",
	"        Ctrl+A select all          Ctrl+G go to line",
	"Search: Ctrl+F find  Ctrl+R replace  F3 find next  Shift+F3 find previous",
	"        in the dialog: Alt+C match case  Alt+R regex  Alt+W wrap  Alt+D direction",
	"View:   Alt+I zoom in  Alt+O zoom out  Alt+0 restore zoom  Alt+Z word wrap",
	"Menus:  F10 or Alt+M menu bar   Ctrl+T command palette   F1 this help",
	"",
	"Shift+arrows select text. Press any key to continue.",
}

var aboutLines = []string{
	"jotr",
	"",
	"A simple text editor",
	"",
	"Press any key to continue.",
}

// drawCentered clears the screen and draws lines in the middle of it.
func drawCentered(s tcell.Screen, lines []string, style tcell.Style) {
	width, height := s.Size()
	s.Clear()
	s.HideCursor()
	y := (height - len(lines)) / 2
	for i, line := range lines {
		x := max(0, (width-runewidth.StringWidth(line))/2)
		drawString(s, x, y+i, width, line, style)
	}
	s.Show()
}

// drawString draws str from column x, clipped at width. It returns the
// column after the last cell drawn.
func drawString(s tcell.Screen, x, y, width int, str string, style tcell.Style) int {
	for _, ch := range str {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			w = 1
		}
		if x+w > width {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// fillRow paints a full-width row with style.
func fillRow(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// statusText is the left and right side of the status bar.
func (r *Runner) statusText() (left, right string) {
	left = r.File.Name()
	if r.Dirty() {
		left += " *"
	}
	if r.Status != "" {
		left += "  " + r.Status
	}
	line, col := r.lineCol()
	right = fmt.Sprintf("Ln %d, Col %d  %d%%", line+1, col+1, r.View.Zoom)
	return left, right
}

// draw renders the document, the mini-buffer and the status bar.
// highlights are drawn as matches underneath the selection.
func (r *Runner) draw(highlights []search.Range) {
	if r.Screen == nil {
		return
	}
	s := r.Screen
	th := r.Theme
	textStyle := tcell.StyleDefault.Foreground(th.TextForeground).Background(th.TextBackground)
	if r.ShowHelp {
		drawCentered(s, helpLines, textStyle)
		return
	}
	if r.ShowAbout {
		drawCentered(s, aboutLines, textStyle)
		return
	}

	r.ensureCursorVisible()
	s.Clear()
	width, height := s.Size()
	areaW, areaH := r.textArea()
	selStyle := tcell.StyleDefault.Foreground(th.SelectionForeground).Background(th.SelectionBackground)
	matchStyle := tcell.StyleDefault.Foreground(th.MatchForeground).Background(th.MatchBackground)
	sel := r.Selection()
	tab := r.tabWidth()

	runes := []rune(r.Text())
	rows := r.rows()
	s.HideCursor()
	cursorShown := false
	for y := 0; y < areaH; y++ {
		fillRow(s, y, areaW, textStyle)
		idx := r.TopLine + y
		if idx >= len(rows) {
			continue
		}
		row := rows[idx]
		col := 0
		for i := row.start; i <= row.end; i++ {
			if i == r.Cursor && r.promptLine == 0 {
				if x := col - r.LeftCol; x >= 0 && x < areaW {
					s.ShowCursor(x, y)
					cursorShown = true
				}
			}
			if i == row.end {
				break
			}
			ch := runes[i]
			w := cellWidth(ch, col, tab)
			style := textStyle
			switch {
			case i >= sel.Start && i < sel.End:
				style = selStyle
			case inRanges(highlights, i):
				style = matchStyle
			}
			if ch == '\t' {
				ch = ' '
			}
			for k := 0; k < w; k++ {
				x := col + k - r.LeftCol
				if x < 0 || x >= areaW {
					continue
				}
				// wide runes occupy their following cells; tabs paint blanks
				if k == 0 || ch == ' ' {
					s.SetContent(x, y, ch, nil, style)
				}
			}
			col += w
		}
	}

	// mini-buffer lines just above the status bar
	miniStyle := tcell.StyleDefault.Foreground(th.MiniForeground).Background(th.MiniBackground)
	for i, line := range r.MiniBuf {
		y := areaH + i
		fillRow(s, y, width, miniStyle)
		end := drawString(s, 0, y, width, line, miniStyle)
		if r.promptLine == i+1 && end < width {
			s.ShowCursor(end, y)
			cursorShown = true
		}
	}

	if r.View.StatusBar || r.Status != "" {
		statusStyle := tcell.StyleDefault.Foreground(th.StatusForeground).Background(th.StatusBackground)
		y := height - 1
		fillRow(s, y, width, statusStyle)
		left, right := r.statusText()
		if !r.View.StatusBar {
			left, right = r.Status, ""
		}
		drawString(s, 0, y, width, left, statusStyle)
		if rw := runewidth.StringWidth(right); rw+runewidth.StringWidth(left)+1 < width {
			drawString(s, width-rw-1, y, width, right, statusStyle)
		}
	}
	if !cursorShown {
		s.HideCursor()
	}
	s.Show()
}

// inRanges reports whether offset i lies inside one of rs.
func inRanges(rs []search.Range, i int) bool {
	for _, rg := range rs {
		if i >= rg.Start && i < rg.End {
			return true
		}
	}
	return false
}
