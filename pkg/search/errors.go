package search

import "fmt"

// PatternError reports a regular expression that failed to compile.
// Callers should show it to the user and keep the editor running.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }
