package cmd

import (
	"errors"

	cerrors "github.com/salmonumbrella/linetrim/internal/errors"
	"github.com/salmonumbrella/linetrim/internal/truncate"
)

// Suggest wraps an error with a user-facing suggestion.
func Suggest(err error, suggestion string) error {
	return cerrors.WithSuggestion(err, suggestion)
}

// mapCommandError adds common suggestions for known error types.
func mapCommandError(err error) error {
	if err == nil {
		return nil
	}
	if cerrors.ContainsSuggestion(err) {
		return err
	}

	switch {
	case errors.Is(err, truncate.ErrFileNotFound):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckPath)
	case errors.Is(err, truncate.ErrPermissionDenied):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckPerms)
	case errors.Is(err, truncate.ErrInvalidCutoff):
		return cerrors.WithSuggestion(err, cerrors.SuggestionCheckCutoff)
	}

	return err
}

// failedDuringRewrite reports whether err came from rewriting the target, the
// one step that can leave it partially written.
func failedDuringRewrite(err error) bool {
	var pe *truncate.PathError
	return errors.As(err, &pe) && pe.Op == "write"
}
