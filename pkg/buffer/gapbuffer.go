package buffer

import (
	"errors"
	"strings"
)

// ErrRange is returned when an edit addresses runes outside the buffer.
var ErrRange = errors.New("buffer: position out of range")

// GapBuffer is a simple gap-buffer implementation for runes.
// The underlying slice stores runes with a gap between gapStart and gapEnd.
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	cacheString string
	cacheLines  []string
	cacheValid  bool
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(cap int) *GapBuffer {
	if cap < 1 {
		cap = 128
	}
	return &GapBuffer{buf: make([]rune, cap), gapStart: 0, gapEnd: cap}
}

// NewGapBufferFromString initializes a GapBuffer with the provided text.
func NewGapBufferFromString(s string) *GapBuffer {
	runes := []rune(s)
	cap := len(runes) + 128
	b := NewGapBuffer(cap)
	copy(b.buf, runes)
	b.gapStart = len(runes)
	return b
}

func (g *GapBuffer) ensureGap(n int) {
	gap := g.gapEnd - g.gapStart
	if gap >= n {
		return
	}
	newCap := len(g.buf)*2 + (n - gap)
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-suffixLen:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffixLen
	g.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapEnd -= d
		g.gapStart = pos
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert inserts runes at position pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return ErrRange
	}
	g.moveGap(pos)
	g.ensureGap(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	g.cacheValid = false
	return nil
}

// Delete removes runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return ErrRange
	}
	g.moveGap(start)
	g.gapEnd += end - start
	g.cacheValid = false
	return nil
}

// Replace substitutes the runes in [start,end) with s.
func (g *GapBuffer) Replace(start, end int, s []rune) error {
	if err := g.Delete(start, end); err != nil {
		return err
	}
	return g.Insert(start, s)
}

// SetText replaces the whole content of the buffer.
func (g *GapBuffer) SetText(s string) {
	*g = *NewGapBufferFromString(s)
}

// Slice returns a copy of the runes in [start,end).
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) + (g.gapEnd - g.gapStart)
		to := end + (g.gapEnd - g.gapStart)
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Len returns the logical length (excluding gap).
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// RuneAt returns the rune at index i. If i is out of bounds, it returns 0.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

// LineAt returns the rune start and end indices for the given line number
// (0-based). If the line index is past the end, it returns the last line's
// bounds. The end index includes the terminating '\n' when present.
func (g *GapBuffer) LineAt(idx int) (start, end int) {
	if idx < 0 {
		idx = 0
	}
	lines := g.Lines()
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	for i := 0; i < idx; i++ {
		start += len([]rune(lines[i])) + 1
	}
	end = start + len([]rune(lines[idx]))
	if idx < len(lines)-1 {
		end++
	}
	return start, end
}

// LineCol converts a rune offset into a 0-based line and column.
func (g *GapBuffer) LineCol(pos int) (line, col int) {
	if pos > g.Len() {
		pos = g.Len()
	}
	for i := 0; i < pos; i++ {
		if g.RuneAt(i) == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// String returns the buffer as a string. The result is cached until the
// buffer is modified.
func (g *GapBuffer) String() string {
	if g.cacheValid {
		return g.cacheString
	}
	var sb strings.Builder
	sb.Grow(g.Len())
	for _, r := range g.buf[:g.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range g.buf[g.gapEnd:] {
		sb.WriteRune(r)
	}
	g.cacheString = sb.String()
	g.cacheLines = strings.Split(g.cacheString, "\n")
	g.cacheValid = true
	return g.cacheString
}

// Lines returns the buffer split into lines. The result is cached until the
// buffer is modified.
func (g *GapBuffer) Lines() []string {
	if !g.cacheValid {
		_ = g.String()
	}
	return g.cacheLines
}
