package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultFile is used when logging is enabled without JOTR_LOG_FILE.
const DefaultFile = "jotr.log"

// Logger writes JSON lines with a timestamp and event fields.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
}

// Disabled returns a logger that drops every event.
func Disabled() *Logger { return &Logger{} }

// New returns a logger writing to w. If w is also an io.Closer it is closed
// by Close.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w), enabled: true}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// NewFromEnv returns a logger if JOTR_LOG is set to a truthy value or if
// JOTR_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./jotr.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("JOTR_LOG_FILE")
	enabled := false
	if v := os.Getenv("JOTR_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if lf != "" {
		enabled = true
	}
	if !enabled {
		return Disabled()
	}
	if lf == "" {
		lf = filepath.Join(".", DefaultFile)
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return Disabled()
	}
	return New(f)
}

// Enabled reports whether events are written anywhere.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, modifiers, action, cursor, buffer_len, file.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	enc := json.NewEncoder(l.w)
	_ = enc.Encode(rec)
	_ = l.w.Flush()
}

// Error records err under event together with fields.
func (l *Logger) Error(event string, err error, fields map[string]any) {
	if !l.Enabled() || err == nil {
		return
	}
	rec := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec["error"] = err.Error()
	l.Event(event, rec)
}
