// Package clipboard backs Cut, Copy and Paste.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores text for Cut/Copy/Paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System uses the platform clipboard (pbcopy, xclip/xsel, wl-clipboard,
// or the Windows API).
type System struct{}

func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Memory is an in-process clipboard used when no platform clipboard exists.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Fallback writes to both Primary and the in-process Memory and reads from
// Primary, falling back to Memory when Primary fails.
type Fallback struct {
	Primary Clipboard
	Memory  Memory
}

func (f *Fallback) ReadAll() (string, error) {
	if f.Primary != nil {
		if s, err := f.Primary.ReadAll(); err == nil {
			return s, nil
		}
	}
	return f.Memory.ReadAll()
}

func (f *Fallback) WriteAll(text string) error {
	_ = f.Memory.WriteAll(text)
	if f.Primary != nil {
		_ = f.Primary.WriteAll(text)
	}
	return nil
}

// New returns the system clipboard when the platform supports one,
// wrapped so copy and paste keep working inside jotr otherwise.
func New() Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return &Fallback{Primary: System{}}
}
