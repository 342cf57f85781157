package cmd

import (
	"context"
	"os"

	"github.com/salmonumbrella/linetrim/internal/outfmt"
	"github.com/salmonumbrella/linetrim/internal/truncate"
	"github.com/salmonumbrella/linetrim/internal/ui"
	"github.com/spf13/cobra"
)

type appKey struct{}

type App struct {
	Flags     *rootFlags
	UI        *ui.UI
	Logger    Logger
	Truncator *truncate.Truncator
}

// Logger is the minimal interface we need from slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
}

func NewApp() *App {
	flags := rootFlags{
		Color:  envOr("LINETRIM_COLOR", "auto"),
		Output: envOr("LINETRIM_OUTPUT", "text"),
	}
	return &App{Flags: &flags, Truncator: truncate.New()}
}

func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func AppFromContext(ctx context.Context) *App {
	if app, ok := ctx.Value(appKey{}).(*App); ok {
		return app
	}
	return nil
}

// runE wraps a cobra RunE to inject the App and normalize errors.
func runE(app *App, fn func(cmd *cobra.Command, args []string, app *App) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			app = AppFromContext(cmd.Context())
		}
		if app == nil {
			app = &App{Flags: &rootFlags{}}
		}
		if app.Truncator == nil {
			app.Truncator = truncate.New()
		}
		if app.UI == nil {
			app.UI = ui.FromContext(cmd.Context())
		}
		return mapCommandError(fn(cmd, args, app))
	}
}

func (a *App) IsJSON(ctx context.Context) bool {
	mode, ok := ctx.Value(outputModeKey).(outfmt.Mode)
	return ok && mode == outfmt.JSON
}

func (a *App) Query(ctx context.Context) string {
	query, _ := ctx.Value(queryKey).(string)
	return query
}

func (a *App) PrintJSON(cmd *cobra.Command, v any) error {
	return outfmt.PrintJSONFiltered(v, a.Query(cmd.Context()))
}

// SkipConfirm reports whether prompts are disabled for this invocation.
func (a *App) SkipConfirm(ctx context.Context) bool {
	return a.IsJSON(ctx) || (a.Flags != nil && a.Flags.Yes)
}

func (a *App) Confirm(cmd *cobra.Command, prompt string, accepted ...string) (bool, error) {
	if a.SkipConfirm(cmd.Context()) {
		return true, nil
	}
	return confirmPrompt(os.Stdin, os.Stderr, prompt, accepted...)
}
