package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"example.com/jotr/pkg/buffer"
	"example.com/jotr/pkg/textfile"
)

// LoadFile reads path into the runner's buffer, replacing the document.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	f, err := textfile.Open(path)
	if err != nil {
		r.Logger.Error("open.error", err, map[string]any{"file": path})
		return err
	}
	r.setDocument(f)
	r.Logger.Event("open.success", map[string]any{"file": path, "lines": len(f.Lines), "runes": r.Buf.Len()})
	return nil
}

// setDocument replaces the buffer with f and resets caret, selection,
// scrolling and history.
func (r *Runner) setDocument(f textfile.TextFile) {
	r.File = f
	r.Buf = buffer.NewGapBufferFromString(f.Text())
	r.Cursor = 0
	r.TopLine = 0
	r.LeftCol = 0
	r.clearSelection()
	if r.History != nil {
		r.History.Clear()
	}
}

// SaveAs writes the document to path and makes path the current file.
func (r *Runner) SaveAs(path string) error {
	if path == "" {
		return os.ErrInvalid
	}
	f := r.File.WithText(r.Text())
	f.Path = path
	r.Logger.Event("save.attempt", map[string]any{"file": path})
	if err := textfile.Save(f); err != nil {
		r.Logger.Error("save.error", err, map[string]any{"file": path})
		return err
	}
	r.File = f
	r.Logger.Event("save.success", map[string]any{"file": path, "lines": len(f.Lines)})
	return nil
}

// Save writes the document to its current path.
func (r *Runner) Save() error {
	return r.SaveAs(r.File.Path)
}

// SaveFile saves to the current path, or asks for one if the document was
// never saved. It reports whether the document was written.
func (r *Runner) SaveFile() bool {
	if r.File.Path == "" {
		return r.runSaveAsPrompt()
	}
	if err := r.Save(); err != nil {
		r.setStatus("Save failed: " + err.Error())
		return false
	}
	r.setStatus("Saved " + r.File.Name())
	return true
}

// runSaveAsPrompt asks for a path and saves there. It reports whether the
// document was written.
func (r *Runner) runSaveAsPrompt() bool {
	saved := false
	res := r.runLinePrompt("Save As: ", r.File.Path, func(path string) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return errors.New("path required")
		}
		if err := r.SaveAs(path); err != nil {
			return err
		}
		saved = true
		return nil
	})
	if res.Cancelled {
		return false
	}
	if saved {
		r.setStatus("Saved " + r.File.Name())
	}
	return saved
}

// confirmDiscard offers to save unsaved changes before the document is
// replaced or the editor exits. A Cancelled result means the caller must
// not continue; saving only lets it continue when the file was written.
func (r *Runner) confirmDiscard() PromptResult {
	if !r.Dirty() {
		return PromptResult{}
	}
	res := r.runChoicePrompt(fmt.Sprintf("Save changes to %s?", r.File.Name()), []choice{
		{key: 's', label: "Save"},
		{key: 'd', label: "Don't Save"},
		{key: 'c', label: "Cancel"},
	})
	switch {
	case res.Cancelled || res.Value == "c":
		return cancelled()
	case res.Value == "s":
		if !r.SaveFile() {
			return cancelled()
		}
	}
	return res
}

// NewFile replaces the document with an empty untitled one.
func (r *Runner) NewFile() {
	if r.confirmDiscard().Cancelled {
		return
	}
	r.setDocument(textfile.Untitled())
	r.Logger.Event("action", map[string]any{"name": "new"})
}

// runOpenPrompt asks for a path and opens it.
func (r *Runner) runOpenPrompt() {
	if r.confirmDiscard().Cancelled {
		return
	}
	res := r.runLinePrompt("Open: ", "", func(path string) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return errors.New("path required")
		}
		return r.LoadFile(path)
	})
	if !res.Cancelled {
		r.setStatus("Opened " + r.File.Name())
	}
}

// Exit reports whether the editor may quit, asking to save unsaved
// changes first.
func (r *Runner) Exit() bool {
	return !r.confirmDiscard().Cancelled
}
