package search

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pattern is a compiled Query. It can be reused for several searches over
// different texts; it never modifies the text it is given.
type Pattern struct {
	query  Query
	needle string // literal pattern, folded when matching is case-insensitive
	re     *regexp.Regexp

	// Derived expressions holding the user's regexp as group 1. scan finds
	// the leftmost match at or after the start of its input and at matches
	// only there. The ctx variants first consume the rune before the
	// search position so anchors and word boundaries see it.
	scan, scanCtx *regexp.Regexp
	at, atCtx     *regexp.Regexp
}

// Compile validates q and prepares it for matching. Only regex queries can
// fail, with a *PatternError.
func Compile(q Query) (*Pattern, error) {
	p := &Pattern{query: q}
	if !q.Regex {
		p.needle = q.Pattern
		if !q.CaseSensitive {
			p.needle = foldString(q.Pattern)
		}
		return p, nil
	}
	expr := q.Pattern
	if !q.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: q.Pattern, Err: err}
	}
	p.re = re
	for _, d := range []struct {
		dst    **regexp.Regexp
		prefix string
	}{
		{&p.scan, `^(?s:.*?)`},
		{&p.scanCtx, `^(?s:.)(?s:.*?)`},
		{&p.at, `^`},
		{&p.atCtx, `^(?s:.)`},
	} {
		if *d.dst, err = regexp.Compile(d.prefix + "(" + expr + ")"); err != nil {
			return nil, &PatternError{Pattern: q.Pattern, Err: err}
		}
	}
	return p, nil
}

// Query returns the query the pattern was compiled from.
func (p *Pattern) Query() Query { return p.query }

func (p *Pattern) empty() bool { return p.query.Pattern == "" }

// FindNext is the compiled form of the package level FindNext.
func (p *Pattern) FindNext(text string, cursor int) (Range, bool) {
	if p.empty() {
		return Range{}, false
	}
	s := p.subject(text)
	n := utf8.RuneCountInString(s)
	cursor = clamp(cursor, 0, n)
	if p.query.Direction == Backward {
		if r, ok := p.prev(s, cursor); ok {
			return r, true
		}
		if p.query.WrapAround {
			return p.prev(s, n)
		}
		return Range{}, false
	}
	if r, ok := p.next(s, cursor); ok {
		return r, true
	}
	if p.query.WrapAround {
		return p.next(s, 0)
	}
	return Range{}, false
}

// FindAll returns all non-empty, non-overlapping matches from left to right.
func (p *Pattern) FindAll(text string) []Range {
	if p.empty() {
		return nil
	}
	if p.re != nil {
		return p.regexMatches(text)
	}
	s := p.subject(text)
	var res []Range
	pos := 0
	for {
		r, ok := p.next(s, pos)
		if !ok {
			return res
		}
		res = append(res, r)
		pos = r.End
	}
}

// Matches reports whether sel is exactly a match of the pattern in text.
// In regex mode the selection has to be the match the regexp prefers at
// sel.Start, with anchors and word boundaries seeing the surrounding text.
func (p *Pattern) Matches(text string, sel Range) bool {
	if p.empty() || sel.Empty() {
		return false
	}
	if p.re != nil {
		_, ok := p.submatchAt(text, sel)
		return ok
	}
	seg := substring(text, sel)
	if !p.query.CaseSensitive {
		seg = foldString(seg)
	}
	return seg == p.needle
}

// subject returns the text the literal matcher scans. Case-insensitive
// literal matching works on folded text, which keeps rune offsets intact.
func (p *Pattern) subject(text string) string {
	if p.re == nil && !p.query.CaseSensitive {
		return foldString(text)
	}
	return text
}

// next returns the leftmost match starting at or after from.
func (p *Pattern) next(s string, from int) (Range, bool) {
	b := byteOffset(s, from)
	if p.re != nil {
		for b <= len(s) {
			loc := p.exec(p.scan, p.scanCtx, s, b)
			if loc == nil {
				return Range{}, false
			}
			if loc[0] < loc[1] {
				return p.toRange(s, loc), true
			}
			if loc[0] >= len(s) {
				return Range{}, false
			}
			// zero-width: try again from the following rune
			_, w := utf8.DecodeRuneInString(s[loc[0]:])
			b = loc[0] + w
		}
		return Range{}, false
	}
	i := strings.Index(s[b:], p.needle)
	if i < 0 {
		return Range{}, false
	}
	start := from + utf8.RuneCountInString(s[b:b+i])
	return Range{Start: start, End: start + utf8.RuneCountInString(p.needle)}, true
}

// prev returns the rightmost match ending at or before to. In regex mode
// start positions are tried leftward from to; the match preferred at a
// position has to fit before to.
func (p *Pattern) prev(s string, to int) (Range, bool) {
	b := byteOffset(s, to)
	if p.re != nil {
		for k := b; k > 0; {
			_, w := utf8.DecodeLastRuneInString(s[:k])
			k -= w
			if loc := p.exec(p.at, p.atCtx, s, k); loc != nil && loc[0] < loc[1] && loc[1] <= b {
				return p.toRange(s, loc), true
			}
		}
		return Range{}, false
	}
	i := strings.LastIndex(s[:b], p.needle)
	if i < 0 {
		return Range{}, false
	}
	start := utf8.RuneCountInString(s[:i])
	return Range{Start: start, End: start + utf8.RuneCountInString(p.needle)}, true
}

// exec runs one of the derived expressions from byte offset b and returns
// the submatch indices of the user's regexp, relative to s. It returns nil
// when there is no match.
func (p *Pattern) exec(re, reCtx *regexp.Regexp, s string, b int) []int {
	base := b
	if b > 0 {
		_, w := utf8.DecodeLastRuneInString(s[:b])
		base -= w
		re = reCtx
	}
	loc := re.FindStringSubmatchIndex(s[base:])
	if loc == nil {
		return nil
	}
	loc = loc[2:]
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += base
		}
	}
	return loc
}

func (p *Pattern) toRange(s string, loc []int) Range {
	c := runeCursor{s: s}
	start := c.runeAt(loc[0])
	return Range{Start: start, End: c.runeAt(loc[1])}
}

// regexMatches runs the regexp over the whole text so that anchors and
// word boundaries keep their context, dropping zero-width matches.
func (p *Pattern) regexMatches(s string) []Range {
	locs := p.re.FindAllStringIndex(s, -1)
	res := make([]Range, 0, len(locs))
	c := runeCursor{s: s}
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		start := c.runeAt(loc[0])
		end := c.runeAt(loc[1])
		res = append(res, Range{Start: start, End: end})
	}
	return res
}

// submatchAt returns the submatch indices of the regex match covering
// exactly sel, if there is one.
func (p *Pattern) submatchAt(text string, sel Range) ([]int, bool) {
	c := runeCursor{s: text}
	bs := c.byteAt(sel.Start)
	be := c.byteAt(sel.End)
	loc := p.exec(p.at, p.atCtx, text, bs)
	if loc == nil || loc[1] != be {
		return nil, false
	}
	return loc, true
}

// foldRune maps r to the smallest rune of its simple case-folding orbit,
// so every case variant of a letter folds to the same rune.
func foldRune(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}

func foldString(s string) string {
	return strings.Map(foldRune, s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
