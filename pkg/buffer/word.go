package buffer

import "unicode"

// RuneSource is the read-only view word motions need.
type RuneSource interface {
	RuneAt(i int) rune
	Len() int
}

// IsWordRune reports whether r is considered part of a word.
// Words consist of letters, digits, or underscore characters.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// PrevWordStart returns the start of the word before pos (Ctrl+Left).
func PrevWordStart(s RuneSource, pos int) int {
	if pos > s.Len() {
		pos = s.Len()
	}
	for pos > 0 && !IsWordRune(s.RuneAt(pos-1)) {
		pos--
	}
	for pos > 0 && IsWordRune(s.RuneAt(pos-1)) {
		pos--
	}
	return pos
}

// NextWordStart returns the start of the next word after pos (Ctrl+Right).
func NextWordStart(s RuneSource, pos int) int {
	n := s.Len()
	if pos >= n {
		return n
	}
	if pos < 0 {
		pos = 0
	}
	for pos < n && IsWordRune(s.RuneAt(pos)) {
		pos++
	}
	for pos < n && !IsWordRune(s.RuneAt(pos)) {
		pos++
	}
	return pos
}

// WordBounds returns the word touching pos. ok is false when pos is not
// adjacent to a word rune.
func WordBounds(s RuneSource, pos int) (start, end int, ok bool) {
	n := s.Len()
	if pos < 0 || pos > n {
		return 0, 0, false
	}
	start, end = pos, pos
	for start > 0 && IsWordRune(s.RuneAt(start-1)) {
		start--
	}
	for end < n && IsWordRune(s.RuneAt(end)) {
		end++
	}
	return start, end, start < end
}
