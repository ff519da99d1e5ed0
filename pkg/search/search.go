// Package search implements the find/replace engine behind the Find and
// Replace dialogs. All offsets are rune (character) offsets into the text.
package search

// Direction selects which way FindNext scans from the cursor.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "up"
	}
	return "down"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Query describes a single search request.
type Query struct {
	Pattern       string
	CaseSensitive bool
	Regex         bool
	Direction     Direction
	WrapAround    bool
}

// Range represents a rune-offset half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no runes.
func (r Range) Empty() bool { return r.End <= r.Start }

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// CursorFor returns the offset a search in direction d should start from
// given the current selection: the selection end when searching forward
// and the selection start when searching backward.
func CursorFor(sel Range, d Direction) int {
	sel = sel.Normalize()
	if d == Backward {
		return sel.Start
	}
	return sel.End
}

// FindNext locates the next match of q in text relative to cursor.
// Forward returns the leftmost match starting at or after cursor; Backward
// returns the rightmost match ending at or before cursor. When nothing is
// found and q.WrapAround is set the scan is retried once from the opposite
// end of the text. The boolean result is false when there is no match; the
// error is non-nil only for an invalid pattern.
func FindNext(text string, cursor int, q Query) (Range, bool, error) {
	p, err := Compile(q)
	if err != nil {
		return Range{}, false, err
	}
	r, ok := p.FindNext(text, cursor)
	return r, ok, nil
}

// FindAll returns every non-empty, non-overlapping match of q in text from
// left to right. Direction and wrap-around are ignored.
func FindAll(text string, q Query) ([]Range, error) {
	p, err := Compile(q)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text), nil
}
