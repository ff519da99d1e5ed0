package app

import (
	"sort"

	"github.com/mattn/go-runewidth"
)

// screenRow is one row of the text area.
type screenRow struct {
	line  int // 0-based document line
	start int // rune offset of the first rune on the row
	end   int // rune offset past the last rune, excluding '\n'
}

// cellWidth returns the number of cells ch occupies when drawn at column
// col. Tabs advance to the next tab stop.
func cellWidth(ch rune, col, tab int) int {
	if ch == '\t' {
		return tab - col%tab
	}
	if w := runewidth.RuneWidth(ch); w > 0 {
		return w
	}
	return 1
}

// layoutRows splits the document into screen rows. With wrap set, lines
// longer than width break after the last blank that fits, or mid-word when
// there is none.
func layoutRows(lines []string, width, tab int, wrap bool) []screenRow {
	rows := make([]screenRow, 0, len(lines))
	pos := 0
	for i, line := range lines {
		runes := []rune(line)
		if !wrap || width <= 0 {
			rows = append(rows, screenRow{line: i, start: pos, end: pos + len(runes)})
			pos += len(runes) + 1
			continue
		}
		start, col, brk := 0, 0, 0
		for j, ch := range runes {
			w := cellWidth(ch, col, tab)
			if col > 0 && col+w > width {
				cut := j
				if brk > start {
					cut = brk
				}
				rows = append(rows, screenRow{line: i, start: pos + start, end: pos + cut})
				start, col = cut, 0
				for _, c := range runes[cut:j] {
					col += cellWidth(c, col, tab)
				}
				w = cellWidth(ch, col, tab)
			}
			col += w
			if ch == ' ' || ch == '\t' {
				brk = j + 1
			}
		}
		rows = append(rows, screenRow{line: i, start: pos + start, end: pos + len(runes)})
		pos += len(runes) + 1
	}
	return rows
}

// rowOf returns the index of the row holding offset pos: the last row that
// starts at or before it.
func rowOf(rows []screenRow, pos int) int {
	i := sort.Search(len(rows), func(i int) bool { return rows[i].start > pos })
	return max(0, i-1)
}

// columnOf returns the screen column of offset pos within row, counting
// from the row start.
func columnOf(runes []rune, row screenRow, pos, tab int) int {
	col := 0
	for i := row.start; i < pos && i < row.end; i++ {
		col += cellWidth(runes[i], col, tab)
	}
	return col
}

// textArea returns the size of the region used for document text.
func (r *Runner) textArea() (width, height int) {
	if r.Screen == nil {
		return 80, 24
	}
	width, height = r.Screen.Size()
	height -= len(r.MiniBuf)
	if r.View.StatusBar || r.Status != "" {
		height--
	}
	return width, max(0, height)
}

// rows lays out the current document for the text area.
func (r *Runner) rows() []screenRow {
	width, _ := r.textArea()
	return layoutRows(r.Buf.Lines(), width, r.tabWidth(), r.View.WordWrap)
}

// ensureCursorVisible scrolls so the caret's row and column are on screen.
func (r *Runner) ensureCursorVisible() {
	if r.Buf == nil {
		return
	}
	width, height := r.textArea()
	rows := r.rows()
	row := rowOf(rows, r.Cursor)
	if row < r.TopLine {
		r.TopLine = row
	} else if height > 0 && row >= r.TopLine+height {
		r.TopLine = row - height + 1
	}
	if r.View.WordWrap {
		r.LeftCol = 0
		return
	}
	col := columnOf([]rune(r.Text()), rows[row], r.Cursor, r.tabWidth())
	if col < r.LeftCol {
		r.LeftCol = col
	} else if width > 0 && col >= r.LeftCol+width {
		r.LeftCol = col - width + 1
	}
}
