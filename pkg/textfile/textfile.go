// Package textfile reads and writes the flat text documents jotr edits.
package textfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// UntitledName is shown for documents that were never saved.
const UntitledName = "Untitled"

// TextFile is a document as last read from or written to disk.
// Path is empty for a new, never saved document.
type TextFile struct {
	Path  string
	Lines []string
}

// Untitled returns the empty document used by File > New.
func Untitled() TextFile {
	return TextFile{Lines: []string{""}}
}

// Name returns the base name of the file, or UntitledName.
func (f TextFile) Name() string {
	if f.Path == "" {
		return UntitledName
	}
	return filepath.Base(f.Path)
}

// Text joins the lines the way the editor displays them after opening.
func (f TextFile) Text() string {
	if len(f.Lines) == 0 || (len(f.Lines) == 1 && f.Lines[0] == "") {
		return ""
	}
	return strings.Join(f.Lines, "\n") + "\n"
}

// Modified reports whether text differs from the document content.
// Trailing empty lines are not significant.
func (f TextFile) Modified(text string) bool {
	return !slices.Equal(SplitLines(text), SplitLines(strings.Join(f.Lines, "\n")))
}

// WithText returns a copy of f holding text.
func (f TextFile) WithText(text string) TextFile {
	return TextFile{Path: f.Path, Lines: SplitLines(text)}
}

// SplitLines splits text on newlines and drops trailing empty lines.
// An empty text yields a single empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Open reads all lines of the file at path.
func Open(path string) (TextFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return TextFile{}, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return TextFile{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return TextFile{Path: path, Lines: lines}, nil
}

// Save writes every line of f followed by a newline.
func Save(f TextFile) error {
	if f.Path == "" {
		return os.ErrInvalid
	}
	var sb strings.Builder
	for _, l := range f.Lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(f.Path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
