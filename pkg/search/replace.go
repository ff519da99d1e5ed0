package search

import (
	"strings"
	"unicode/utf8"
)

// ReplaceResult describes the outcome of ReplaceCurrent.
type ReplaceResult struct {
	// Text is the buffer after the operation; unchanged when Replaced is false.
	Text string
	// Replaced reports whether the selection was substituted.
	Replaced bool
	// Inserted is the range the replacement occupies in Text.
	Inserted Range
	// Next is the match found after the replacement (or instead of it).
	Next  Range
	Found bool
}

// ReplaceCurrent replaces the selection sel with replacement when sel is a
// match of q, then searches for the next match so the caller can chain
// replace and find. An empty or non-matching selection only searches. In
// regex mode replacement may reference the match's groups as $1 or ${name}.
func ReplaceCurrent(text string, sel Range, q Query, replacement string) (ReplaceResult, error) {
	p, err := Compile(q)
	if err != nil {
		return ReplaceResult{Text: text}, err
	}
	return p.ReplaceCurrent(text, sel, replacement), nil
}

// ReplaceAll replaces every non-overlapping match of q in text, scanning
// the whole buffer from the start regardless of q.Direction. It returns the
// new text and the number of replacements.
func ReplaceAll(text string, q Query, replacement string) (string, int, error) {
	p, err := Compile(q)
	if err != nil {
		return text, 0, err
	}
	out, n := p.ReplaceAll(text, replacement)
	return out, n, nil
}

// ReplaceCurrent is the compiled form of the package level ReplaceCurrent.
func (p *Pattern) ReplaceCurrent(text string, sel Range, replacement string) ReplaceResult {
	n := utf8.RuneCountInString(text)
	sel = sel.Normalize()
	sel.Start = clamp(sel.Start, 0, n)
	sel.End = clamp(sel.End, 0, n)
	if sel.Empty() || !p.Matches(text, sel) {
		next, ok := p.FindNext(text, CursorFor(sel, p.query.Direction))
		return ReplaceResult{Text: text, Next: next, Found: ok}
	}

	ins := p.expand(text, sel, replacement)
	c := runeCursor{s: text}
	bs := c.byteAt(sel.Start)
	be := c.byteAt(sel.End)
	out := text[:bs] + ins + text[be:]

	inserted := Range{Start: sel.Start, End: sel.Start + utf8.RuneCountInString(ins)}
	cursor := inserted.End
	if p.query.Direction == Backward {
		cursor = inserted.Start
	}
	next, ok := p.FindNext(out, cursor)
	return ReplaceResult{Text: out, Replaced: true, Inserted: inserted, Next: next, Found: ok}
}

// ReplaceAll is the compiled form of the package level ReplaceAll.
// Like FindAll it skips zero-width regex matches, so it replaces exactly
// the matches Find Next can select.
func (p *Pattern) ReplaceAll(text, replacement string) (string, int) {
	if p.empty() {
		return text, 0
	}
	var b strings.Builder
	if p.re != nil {
		n, last := 0, 0
		var dst []byte
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if loc[0] == loc[1] {
				continue
			}
			b.WriteString(text[last:loc[0]])
			dst = p.re.ExpandString(dst[:0], replacement, text, loc)
			b.Write(dst)
			last = loc[1]
			n++
		}
		if n == 0 {
			return text, 0
		}
		b.WriteString(text[last:])
		return b.String(), n
	}

	matches := p.FindAll(text)
	if len(matches) == 0 {
		return text, 0
	}
	c := runeCursor{s: text}
	last := 0
	for _, m := range matches {
		bs := c.byteAt(m.Start)
		be := c.byteAt(m.End)
		b.WriteString(text[last:bs])
		b.WriteString(replacement)
		last = be
	}
	b.WriteString(text[last:])
	return b.String(), len(matches)
}

// expand returns the text that replaces the match sel.
func (p *Pattern) expand(text string, sel Range, replacement string) string {
	if p.re == nil {
		return replacement
	}
	loc, ok := p.submatchAt(text, sel)
	if !ok {
		return replacement
	}
	return string(p.re.ExpandString(nil, replacement, text, loc))
}
