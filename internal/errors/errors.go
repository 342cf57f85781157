// Package errors attaches context and user-facing suggestions to errors.
package errors

import (
	"errors"
	"fmt"
)

// Suggestions shown under an error message.
const (
	SuggestionCheckPath   = "Check the file path; it is resolved relative to the current directory"
	SuggestionCheckPerms  = "Make sure you can read and write the file and create files in its directory"
	SuggestionCheckCutoff = "Pass a line count of zero or more with --lines"
)

// RestoreSuggestion tells the user where the untouched copy of a file lives.
func RestoreSuggestion(backup string) string {
	return fmt.Sprintf("The original content is in %s; copy it back to restore the file", backup)
}

// ContextError wraps an error with context and an optional suggestion.
type ContextError struct {
	Context    string // e.g. "while truncating portal.php"
	Err        error
	Suggestion string
}

// Error returns "context: err", or just err without context.
func (e *ContextError) Error() string {
	if e.Err == nil {
		return ""
	}
	if e.Context == "" {
		return e.Err.Error()
	}
	return e.Context + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// WithContext wraps err with context. Returns nil for a nil err.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ContextError{Context: context, Err: err}
}

// WithSuggestion attaches a suggestion to err. A top-level ContextError is
// copied with the suggestion set rather than modified in place.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*ContextError); ok {
		cp := *ce
		cp.Suggestion = suggestion
		return &cp
	}
	return &ContextError{Err: err, Suggestion: suggestion}
}

// ContainsSuggestion reports whether any ContextError in err's chain has a suggestion.
func ContainsSuggestion(err error) bool {
	return GetSuggestion(err) != ""
}

// GetSuggestion returns the first suggestion found in err's chain.
func GetSuggestion(err error) string {
	var ce *ContextError
	if errors.As(err, &ce) {
		if ce.Suggestion != "" {
			return ce.Suggestion
		}
		return GetSuggestion(ce.Err)
	}
	return ""
}
