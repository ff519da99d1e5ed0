package search

import "unicode/utf8"

// runeCursor converts between rune and byte offsets of s while walking
// forward. Offsets passed to it must not decrease between calls.
type runeCursor struct {
	s string
	r int
	b int
}

func (c *runeCursor) step() {
	_, size := utf8.DecodeRuneInString(c.s[c.b:])
	c.b += size
	c.r++
}

// byteAt returns the byte offset of rune offset n.
func (c *runeCursor) byteAt(n int) int {
	for c.r < n && c.b < len(c.s) {
		c.step()
	}
	return c.b
}

// runeAt returns the rune offset of byte offset b.
func (c *runeCursor) runeAt(b int) int {
	for c.b < b && c.b < len(c.s) {
		c.step()
	}
	return c.r
}

func byteOffset(s string, n int) int {
	c := runeCursor{s: s}
	return c.byteAt(n)
}

func substring(s string, r Range) string {
	c := runeCursor{s: s}
	bs := c.byteAt(r.Start)
	be := c.byteAt(r.End)
	return s[bs:be]
}
