package search

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindNext_Forward(t *testing.T) {
	r, ok, err := FindNext("hello world", 0, Query{Pattern: "world", CaseSensitive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match")
	}
	if r != (Range{Start: 6, End: 11}) {
		t.Fatalf("expected [6,11), got %#v", r)
	}
}

func TestFindNext_BackwardFromEnd(t *testing.T) {
	q := Query{Pattern: "world", CaseSensitive: true, Direction: Backward, WrapAround: true}
	r, ok, err := FindNext("hello world", 11, q)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
	if r != (Range{Start: 6, End: 11}) {
		t.Fatalf("expected [6,11), got %#v", r)
	}
}

func TestFindNext_BackwardWraps(t *testing.T) {
	q := Query{Pattern: "world", CaseSensitive: true, Direction: Backward, WrapAround: true}
	r, ok, _ := FindNext("hello world", 5, q)
	if !ok || r != (Range{Start: 6, End: 11}) {
		t.Fatalf("expected wrapped match [6,11), got %#v ok=%v", r, ok)
	}
	q.WrapAround = false
	if _, ok, _ := FindNext("hello world", 5, q); ok {
		t.Fatalf("expected no match without wrap-around")
	}
}

func TestFindNext_ForwardWraps(t *testing.T) {
	q := Query{Pattern: "hello", CaseSensitive: true, WrapAround: true}
	r, ok, _ := FindNext("hello world", 3, q)
	if !ok || r != (Range{Start: 0, End: 5}) {
		t.Fatalf("expected wrapped match [0,5), got %#v ok=%v", r, ok)
	}
	q.WrapAround = false
	if _, ok, _ := FindNext("hello world", 3, q); ok {
		t.Fatalf("expected no match without wrap-around")
	}
}

func TestFindNext_LiteralLeftmostAndRightmost(t *testing.T) {
	text := "abc abc abc"
	cases := []struct {
		name   string
		cursor int
		dir    Direction
		want   Range
	}{
		{"forward at match", 4, Forward, Range{4, 7}},
		{"forward inside match", 5, Forward, Range{8, 11}},
		{"backward at match end", 7, Backward, Range{4, 7}},
		{"backward inside match", 6, Backward, Range{0, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Query{Pattern: "abc", CaseSensitive: true, Direction: tc.dir}
			got, ok, err := FindNext(text, tc.cursor, q)
			if err != nil || !ok {
				t.Fatalf("expected match, got ok=%v err=%v", ok, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("range mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindNext_BackwardOverlapping(t *testing.T) {
	q := Query{Pattern: "aa", CaseSensitive: true, Direction: Backward}
	r, ok, _ := FindNext("aaa", 3, q)
	if !ok || r != (Range{Start: 1, End: 3}) {
		t.Fatalf("expected [1,3), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_CaseInsensitiveLiteral(t *testing.T) {
	q := Query{Pattern: "hello"}
	r, ok, _ := FindNext("Hello HELLO hello", 1, q)
	if !ok || r != (Range{Start: 6, End: 11}) {
		t.Fatalf("expected [6,11), got %#v ok=%v", r, ok)
	}
	q.Pattern = "HeLLo"
	r, ok, _ = FindNext("say hello", 0, q)
	if !ok || r != (Range{Start: 4, End: 9}) {
		t.Fatalf("expected [4,9), got %#v ok=%v", r, ok)
	}
	q.CaseSensitive = true
	if _, ok, _ := FindNext("say hello", 0, q); ok {
		t.Fatalf("case-sensitive search should not match different case")
	}
}

func TestFindNext_RuneOffsets(t *testing.T) {
	r, ok, _ := FindNext("héllo wörld", 0, Query{Pattern: "WÖRLD"})
	if !ok || r != (Range{Start: 6, End: 11}) {
		t.Fatalf("expected rune range [6,11), got %#v ok=%v", r, ok)
	}
	// Kelvin sign folds together with k and K.
	r, ok, _ = FindNext("Kelvin", 0, Query{Pattern: "kelvin"})
	if !ok || r != (Range{Start: 0, End: 6}) {
		t.Fatalf("expected [0,6), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_Regex(t *testing.T) {
	q := Query{Pattern: `foo(\d+)`, Regex: true, CaseSensitive: true}
	r, ok, err := FindNext("foo1 foo22", 0, q)
	if err != nil || !ok || r != (Range{Start: 0, End: 4}) {
		t.Fatalf("expected [0,4), got %#v ok=%v err=%v", r, ok, err)
	}
	r, ok, _ = FindNext("foo1 foo22", 4, q)
	if !ok || r != (Range{Start: 5, End: 10}) {
		t.Fatalf("expected [5,10), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_RegexCaseFlag(t *testing.T) {
	q := Query{Pattern: `fo+`, Regex: true}
	r, ok, _ := FindNext("FOO", 0, q)
	if !ok || r != (Range{Start: 0, End: 3}) {
		t.Fatalf("expected case-insensitive regex match, got %#v ok=%v", r, ok)
	}
	q.CaseSensitive = true
	if _, ok, _ := FindNext("FOO", 0, q); ok {
		t.Fatalf("case-sensitive regex should not match")
	}
}

func TestFindNext_RegexKeepsLineContext(t *testing.T) {
	q := Query{Pattern: `(?m)^foo`, Regex: true, CaseSensitive: true}
	r, ok, _ := FindNext("foofoo\nfoo", 3, q)
	if !ok || r != (Range{Start: 7, End: 10}) {
		t.Fatalf("expected line-start match [7,10), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_RegexBackward(t *testing.T) {
	q := Query{Pattern: `[a-z]\d`, Regex: true, Direction: Backward}
	r, ok, _ := FindNext("a1 b2 c3", 5, q)
	if !ok || r != (Range{Start: 3, End: 5}) {
		t.Fatalf("expected [3,5), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_InvalidRegex(t *testing.T) {
	_, ok, err := FindNext("text (", 0, Query{Pattern: "(", Regex: true})
	if ok {
		t.Fatalf("invalid pattern must not report a match")
	}
	var pe *PatternError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PatternError, got %v", err)
	}
	if pe.Pattern != "(" {
		t.Fatalf("unexpected pattern in error: %q", pe.Pattern)
	}
	// the same text is fine as a literal
	if _, ok, err := FindNext("text (", 0, Query{Pattern: "("}); err != nil || !ok {
		t.Fatalf("literal '(' should match, ok=%v err=%v", ok, err)
	}
}

func TestFindNext_AbsentPatternTerminates(t *testing.T) {
	for _, dir := range []Direction{Forward, Backward} {
		q := Query{Pattern: "zzz", Direction: dir, WrapAround: true}
		if _, ok, err := FindNext("abc abc", 3, q); ok || err != nil {
			t.Fatalf("expected not found for %v, got ok=%v err=%v", dir, ok, err)
		}
	}
}

func TestFindNext_EmptyPatternAndZeroWidth(t *testing.T) {
	if _, ok, _ := FindNext("abc", 0, Query{}); ok {
		t.Fatalf("empty pattern should not match")
	}
	q := Query{Pattern: "x*", Regex: true, WrapAround: true}
	if _, ok, _ := FindNext("abc", 0, q); ok {
		t.Fatalf("zero-width matches should be skipped")
	}
}

func TestFindNext_ClampsCursor(t *testing.T) {
	r, ok, _ := FindNext("abc", -5, Query{Pattern: "a"})
	if !ok || r != (Range{Start: 0, End: 1}) {
		t.Fatalf("expected [0,1), got %#v ok=%v", r, ok)
	}
	r, ok, _ = FindNext("abc", 100, Query{Pattern: "c", Direction: Backward})
	if !ok || r != (Range{Start: 2, End: 3}) {
		t.Fatalf("expected [2,3), got %#v ok=%v", r, ok)
	}
}

func TestFindNext_DoesNotMutate(t *testing.T) {
	text := "Mixed Case Text"
	before := text
	_, _, _ = FindNext(text, 0, Query{Pattern: "case"})
	if text != before {
		t.Fatalf("text changed: %q", text)
	}
}

func TestFindAll(t *testing.T) {
	got, err := FindAll("hello world hello", Query{Pattern: "hello", CaseSensitive: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Range{{0, 5}, {12, 17}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matches mismatch (-want +got):\n%s", diff)
	}

	got, _ = FindAll("aaaa", Query{Pattern: "aa"})
	want = []Range{{0, 2}, {2, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("non-overlapping mismatch (-want +got):\n%s", diff)
	}

	got, _ = FindAll("a1 b22", Query{Pattern: `\d+`, Regex: true})
	want = []Range{{1, 2}, {4, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("regex matches mismatch (-want +got):\n%s", diff)
	}
}

func TestCursorFor(t *testing.T) {
	sel := Range{Start: 9, End: 4}
	if got := CursorFor(sel, Forward); got != 9 {
		t.Fatalf("forward cursor: expected 9, got %d", got)
	}
	if got := CursorFor(sel, Backward); got != 4 {
		t.Fatalf("backward cursor: expected 4, got %d", got)
	}
}

func TestPattern_Matches(t *testing.T) {
	p, err := Compile(Query{Pattern: "foo"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !p.Matches("a FOO b", Range{2, 5}) {
		t.Fatalf("expected FOO to satisfy case-insensitive literal")
	}
	if p.Matches("a FOO b", Range{1, 5}) {
		t.Fatalf("selection with extra text must not match")
	}
	re, _ := Compile(Query{Pattern: `\bfoo`, Regex: true, CaseSensitive: true})
	if re.Matches("xfoo", Range{1, 4}) {
		t.Fatalf("word boundary should see the preceding rune")
	}
	if !re.Matches("x foo", Range{2, 5}) {
		t.Fatalf("expected regex selection to match")
	}
}

func TestFindNext_RegexOverlappingMatches(t *testing.T) {
	q := Query{Pattern: "aa", Regex: true, CaseSensitive: true}
	r, ok, err := FindNext("aaa", 1, q)
	if err != nil || !ok || r != (Range{Start: 1, End: 3}) {
		t.Fatalf("expected [1,3), got %#v ok=%v err=%v", r, ok, err)
	}
	q.Direction = Backward
	r, ok, _ = FindNext("xaaa", 4, q)
	if !ok || r != (Range{Start: 2, End: 4}) {
		t.Fatalf("expected [2,4), got %#v ok=%v", r, ok)
	}
	// regex and literal agree
	lit := Query{Pattern: "aa", CaseSensitive: true, Direction: Backward}
	if lr, _, _ := FindNext("xaaa", 4, lit); lr != r {
		t.Fatalf("literal %#v and regex %#v disagree", lr, r)
	}
}

func TestFindNext_RegexContextAtCursor(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		pattern string
		cursor  int
		dir     Direction
		want    Range
	}{
		{"word boundary forward", "xfoo foo", `\bfoo`, 1, Forward, Range{5, 8}},
		{"line start forward", "ab\nb", `(?m)^b`, 1, Forward, Range{3, 4}},
		{"text start only at zero", "aa", `^a`, 1, Forward, Range{0, 1}},
		{"word boundary backward", "foo xfoo", `\bfoo`, 8, Backward, Range{0, 3}},
		{"line end backward", "ab\nab", `b$`, 5, Backward, Range{4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Query{Pattern: tc.pattern, Regex: true, CaseSensitive: true, Direction: tc.dir, WrapAround: true}
			got, ok, err := FindNext(tc.text, tc.cursor, q)
			if err != nil || !ok {
				t.Fatalf("expected match, got ok=%v err=%v", ok, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("range mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindNext_RegexSkipsEmptyMatchToNextRune(t *testing.T) {
	r, ok, _ := FindNext("bab", 0, Query{Pattern: "a*", Regex: true})
	if !ok || r != (Range{Start: 1, End: 2}) {
		t.Fatalf("expected [1,2), got %#v ok=%v", r, ok)
	}
	r, ok, _ = FindNext("héllo", 1, Query{Pattern: "l+", Regex: true})
	if !ok || r != (Range{Start: 2, End: 4}) {
		t.Fatalf("expected rune range [2,4), got %#v ok=%v", r, ok)
	}
}
