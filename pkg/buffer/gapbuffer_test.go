package buffer

import (
	"errors"
	"testing"
)

func TestGapBuffer_InsertDelete(t *testing.T) {
	g := NewGapBufferFromString("Hello World")
	if g.String() != "Hello World" {
		t.Fatalf("expected initial content 'Hello World', got %q", g.String())
	}
	if err := g.Insert(5, []rune{','}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if g.String() != "Hello, World" {
		t.Fatalf("expected 'Hello, World', got %q", g.String())
	}
	if err := g.Delete(5, 6); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if g.String() != "Hello World" {
		t.Fatalf("expected 'Hello World' after delete, got %q", g.String())
	}
}

func TestGapBuffer_ReplaceAcrossGap(t *testing.T) {
	g := NewGapBufferFromString("héllo wörld")
	// park the gap in the middle first
	if err := g.Insert(3, []rune("X")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if err := g.Delete(3, 4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := g.Replace(1, 9, []rune("i")); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if got := g.String(); got != "hild" {
		t.Fatalf("expected 'hild', got %q", got)
	}
	if got := string(g.Slice(1, 3)); got != "il" {
		t.Fatalf("expected slice 'il', got %q", got)
	}
}

func TestGapBuffer_OutOfRange(t *testing.T) {
	g := NewGapBufferFromString("abc")
	if err := g.Insert(4, []rune("x")); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
	if err := g.Delete(2, 5); !errors.Is(err, ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestGapBuffer_LineAt(t *testing.T) {
	g := NewGapBufferFromString("one\ntwo\nthree")
	start, end := g.LineAt(1)
	if line := string(g.Slice(start, end)); line != "two\n" {
		t.Fatalf("expected line 'two\\n', got %q", line)
	}
	start, end = g.LineAt(9)
	if line := string(g.Slice(start, end)); line != "three" {
		t.Fatalf("expected last line 'three', got %q", line)
	}
}

func TestGapBuffer_LineCol(t *testing.T) {
	g := NewGapBufferFromString("ab\ncde\nf")
	line, col := g.LineCol(5)
	if line != 1 || col != 2 {
		t.Fatalf("expected 1:2, got %d:%d", line, col)
	}
	line, col = g.LineCol(100)
	if line != 2 || col != 1 {
		t.Fatalf("expected clamp to 2:1, got %d:%d", line, col)
	}
}

func TestGapBuffer_SetText(t *testing.T) {
	g := NewGapBufferFromString("old")
	_ = g.String()
	g.SetText("new\ntext")
	if g.String() != "new\ntext" || len(g.Lines()) != 2 {
		t.Fatalf("unexpected content after SetText: %q", g.String())
	}
}
