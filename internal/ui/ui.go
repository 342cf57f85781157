// Package ui prints colored status lines for terminal users.
// Color is auto-detected from the output, can be forced on or off, and
// NO_COLOR always wins.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

type UI struct {
	w     io.Writer
	out   *termenv.Output
	color bool
}

type contextKey struct{}

// New creates a UI writing to w. colorMode is "never", "always" or "auto".
func New(colorMode string, w io.Writer) *UI {
	if w == nil {
		w = os.Stdout
	}
	out := termenv.NewOutput(w)

	var color bool
	switch colorMode {
	case "never":
		color = false
	case "always":
		color = true
	default:
		color = out.ColorProfile() != termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}

	return &UI{w: w, out: out, color: color}
}

func (u *UI) print(code, msg string) {
	if u.color && code != "" {
		fmt.Fprintln(u.w, u.out.String(msg).Foreground(u.out.Color(code)))
		return
	}
	fmt.Fprintln(u.w, msg)
}

// Success prints msg in green.
func (u *UI) Success(msg string) { u.print("2", msg) }

// Warning prints msg in yellow.
func (u *UI) Warning(msg string) { u.print("3", msg) }

// Infof formats and prints an uncolored line.
func (u *UI) Infof(format string, args ...any) { u.print("", fmt.Sprintf(format, args...)) }

func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the UI stored in ctx, or an auto-color UI on stdout.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return New("auto", os.Stdout)
}
