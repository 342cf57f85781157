// Package outfmt writes command results as text or JSON.
package outfmt

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/salmonumbrella/linetrim/internal/filter"
)

type Mode int

const (
	Text Mode = iota
	JSON
)

// ParseMode maps an --output value to a Mode. Unknown values fall back to Text.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return JSON
	}
	return Text
}

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONFiltered writes v to w after applying a JQ expression.
// An empty query behaves like WriteJSON.
func WriteJSONFiltered(w io.Writer, v any, query string) error {
	result, err := filter.Apply(v, query)
	if err != nil {
		return err
	}
	return WriteJSON(w, result)
}

// PrintJSONFiltered is WriteJSONFiltered on stdout.
func PrintJSONFiltered(v any, query string) error {
	return WriteJSONFiltered(os.Stdout, v, query)
}
