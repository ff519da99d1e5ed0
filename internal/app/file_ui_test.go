package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"example.com/jotr/pkg/textfile"
	"github.com/gdamore/tcell/v2"
)

func TestRunner_LoadFile_NormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := newTestRunner("old")
	r.Cursor = 3
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := r.Text(); got != "a\nb\n" {
		t.Fatalf("expected normalized newlines, got %q", got)
	}
	if r.Cursor != 0 || r.Dirty() {
		t.Fatalf("expected clean document with caret at 0, cursor=%d dirty=%v", r.Cursor, r.Dirty())
	}
	r.Undo()
	if r.Text() != "a\nb\n" || r.Status != "Nothing to undo" {
		t.Fatalf("history must not reach the previous document, got %q", r.Text())
	}
}

func TestRunner_LoadFile_Missing(t *testing.T) {
	r := newTestRunner("keep")
	if err := r.LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if r.Text() != "keep" {
		t.Fatalf("document must be kept, got %q", r.Text())
	}
}

func TestRunner_SaveAs_WritesAndClearsDirty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	r := newTestRunner("")
	typeText(r, "ab")
	if err := r.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "ab\n" {
		t.Fatalf("expected 'ab\\n', got %q", string(data))
	}
	if r.Dirty() || r.File.Name() != "out.txt" {
		t.Fatalf("expected clean document named out.txt, got dirty=%v name=%q", r.Dirty(), r.File.Name())
	}
}

func TestRunner_Save_WithoutPath(t *testing.T) {
	r := newTestRunner("x")
	if err := r.Save(); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("expected os.ErrInvalid, got %v", err)
	}
	// without input there is nobody to ask for a path
	if r.SaveFile() {
		t.Fatalf("SaveFile must fail without a path")
	}
}

func TestSaveFile_PromptsForPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	r := newTestRunner("")
	typeText(r, "draft")
	feed(r, append(typed(path), keyEv(tcell.KeyEnter, 0))...)
	r.handleKeyEvent(ctrlEv('s'))
	if r.File.Path != path || r.Dirty() {
		t.Fatalf("expected document saved to %s, got %q dirty=%v", path, r.File.Path, r.Dirty())
	}
	if r.Status != "Saved draft.txt" {
		t.Fatalf("unexpected status %q", r.Status)
	}
}

func TestSaveAsPrompt_RetriesOnEmptyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	r := newTestRunner("")
	typeText(r, "a")
	evs := []tcell.Event{keyEv(tcell.KeyEnter, 0)}
	evs = append(evs, typed(path)...)
	evs = append(evs, keyEv(tcell.KeyEnter, 0))
	feed(r, evs...)
	if !r.runSaveAsPrompt() {
		t.Fatalf("expected the second attempt to save")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file written: %v", err)
	}
}

func TestNewFile_CleanDocument(t *testing.T) {
	r := newTestRunner("abc")
	r.handleKeyEvent(ctrlEv('n'))
	if r.Text() != "" || r.File.Name() != textfile.UntitledName {
		t.Fatalf("expected empty untitled document, got %q %q", r.Text(), r.File.Name())
	}
}

func TestNewFile_ConfirmCancel(t *testing.T) {
	for _, ev := range []tcell.Event{runeEv('c'), keyEv(tcell.KeyEsc, 0)} {
		r := newTestRunner("")
		typeText(r, "draft")
		feed(r, ev)
		r.NewFile()
		if r.Text() != "draft" || !r.Dirty() {
			t.Fatalf("cancel must keep the document, got %q", r.Text())
		}
		if r.MiniBuf != nil {
			t.Fatalf("prompt should be closed")
		}
	}
}

func TestNewFile_DontSave(t *testing.T) {
	r := newTestRunner("")
	typeText(r, "draft")
	feed(r, runeEv('d'))
	r.NewFile()
	if r.Text() != "" || r.Dirty() {
		t.Fatalf("expected empty document, got %q", r.Text())
	}
}

func TestNewFile_SaveUntitledFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	r := newTestRunner("")
	typeText(r, "draft")
	evs := []tcell.Event{runeEv('S')}
	evs = append(evs, typed(path)...)
	evs = append(evs, keyEv(tcell.KeyEnter, 0))
	feed(r, evs...)
	r.NewFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "draft\n" {
		t.Fatalf("expected saved draft, got %q", string(data))
	}
	if r.Text() != "" || r.File.Path != "" {
		t.Fatalf("expected new untitled document, got %q at %q", r.Text(), r.File.Path)
	}
}

func TestNewFile_SaveCancelledKeepsDocument(t *testing.T) {
	r := newTestRunner("")
	typeText(r, "draft")
	feed(r, runeEv('s'), keyEv(tcell.KeyEsc, 0))
	r.NewFile()
	if r.Text() != "draft" {
		t.Fatalf("cancelled save must keep the document, got %q", r.Text())
	}
}

func TestExit_Confirmation(t *testing.T) {
	r := newTestRunner("")
	if !r.Exit() {
		t.Fatalf("clean document should exit")
	}
	typeText(r, "x")
	feed(r, runeEv('c'))
	if r.Exit() {
		t.Fatalf("cancel must keep the editor open")
	}
	feed(r, runeEv('d'))
	if !r.Exit() {
		t.Fatalf("don't save should exit")
	}
}

func TestOpenPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := newTestRunner("")
	feed(r, append(typed(path), keyEv(tcell.KeyEnter, 0))...)
	r.handleKeyEvent(ctrlEv('o'))
	if r.Text() != "x\n" || r.File.Path != path {
		t.Fatalf("expected file opened, got %q at %q", r.Text(), r.File.Path)
	}
	if r.Status != "Opened in.txt" {
		t.Fatalf("unexpected status %q", r.Status)
	}
}

func TestOpenPrompt_MissingFileKeepsPromptOpen(t *testing.T) {
	r := newTestRunner("")
	evs := append(typed("/nonexistent/jotr.txt"), keyEv(tcell.KeyEnter, 0), keyEv(tcell.KeyEsc, 0))
	feed(r, evs...)
	r.runOpenPrompt()
	if r.File.Path != "" || r.MiniBuf != nil {
		t.Fatalf("expected untitled document and closed prompt, got %q", r.File.Path)
	}
	if r.Status != "" {
		t.Fatalf("cancelled open must not report success, got %q", r.Status)
	}
}
