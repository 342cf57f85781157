package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestContextError_Message(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		expected string
	}{
		{
			name:     "with context",
			context:  "while truncating portal.php",
			err:      errors.New("permission denied"),
			expected: "while truncating portal.php: permission denied",
		},
		{
			name:     "without context",
			err:      errors.New("permission denied"),
			expected: "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithContext(tt.err, tt.context).Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if WithContext(nil, "x") != nil {
		t.Error("WithContext(nil) should be nil")
	}
	if WithSuggestion(nil, "x") != nil {
		t.Error("WithSuggestion(nil) should be nil")
	}
	if ContainsSuggestion(nil) {
		t.Error("ContainsSuggestion(nil) should be false")
	}
	if (&ContextError{}).Error() != "" {
		t.Error("empty ContextError should have empty message")
	}
}

func TestWithSuggestion_DoesNotMutateOriginal(t *testing.T) {
	base := WithContext(errors.New("boom"), "while reading")
	withHint := WithSuggestion(base, SuggestionCheckPath)

	if ContainsSuggestion(base) {
		t.Error("original error gained a suggestion")
	}
	if GetSuggestion(withHint) != SuggestionCheckPath {
		t.Errorf("GetSuggestion() = %q", GetSuggestion(withHint))
	}
	if withHint.Error() != "while reading: boom" {
		t.Errorf("Error() = %q", withHint.Error())
	}
}

func TestSuggestion_ThroughWrapping(t *testing.T) {
	base := errors.New("not found")
	inner := WithSuggestion(base, SuggestionCheckPath)
	outer := WithContext(fmt.Errorf("outer: %w", inner), "while truncating")

	if !errors.Is(outer, base) {
		t.Error("errors.Is should find the base error")
	}
	if got := GetSuggestion(outer); got != SuggestionCheckPath {
		t.Errorf("GetSuggestion() = %q, want %q", got, SuggestionCheckPath)
	}
}

func TestRestoreSuggestion(t *testing.T) {
	got := RestoreSuggestion("portal_backup_20251005_221152.php")
	if !strings.Contains(got, "portal_backup_20251005_221152.php") {
		t.Fatalf("suggestion missing backup path: %q", got)
	}
}
