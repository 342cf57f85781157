package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cerrors "github.com/salmonumbrella/linetrim/internal/errors"
	"github.com/salmonumbrella/linetrim/internal/logging"
	"github.com/salmonumbrella/linetrim/internal/outfmt"
	"github.com/salmonumbrella/linetrim/internal/ui"
	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type rootFlags struct {
	Color          string
	Output         string
	Debug          bool
	Query          string
	Yes            bool
	NoInput        bool
	NonInteractive bool
}

type contextKey string

const (
	outputModeKey contextKey = "outputMode"
	queryKey      contextKey = "query"
)

func Execute(args []string) error {
	app := NewApp()
	root := NewRootCmd(app)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		if outfmt.ParseMode(app.Flags.Output) == outfmt.JSON {
			payload := map[string]any{
				"message": err.Error(),
			}
			if cerrors.ContainsSuggestion(err) {
				payload["suggestion"] = cerrors.GetSuggestion(err)
			}
			_ = outfmt.WriteJSON(os.Stderr, map[string]any{"error": payload})
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
			if cerrors.ContainsSuggestion(err) {
				fmt.Fprintln(os.Stderr, "")
				fmt.Fprintln(os.Stderr, "Suggestion:", cerrors.GetSuggestion(err))
			}
		}
	}
	return err
}

func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "linetrim",
		Short:         "Cut a text file down to its first N lines, keeping a timestamped backup",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Keep the first 1695 lines of portal.php (creates portal_backup_<timestamp>.php first)
  linetrim truncate portal.php --lines 1695

  # See what would be removed without touching anything
  linetrim plan portal.php --lines 1695

  # Scripted use
  linetrim --yes --output=json truncate portal.php -n 1695 --query .removedLines
`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode := outfmt.ParseMode(app.Flags.Output)

			u := ui.New(app.Flags.Color, os.Stdout)
			ctx := ui.WithUI(cmd.Context(), u)
			app.UI = u

			ctx = context.WithValue(ctx, outputModeKey, mode)
			ctx = context.WithValue(ctx, queryKey, app.Flags.Query)

			if app.Flags.NoInput || app.Flags.NonInteractive {
				app.Flags.Yes = true
			}

			logger := logging.Setup(logging.Options{Debug: app.Flags.Debug, JSON: mode == outfmt.JSON})
			ctx = logging.WithLogger(ctx, logger)
			app.Logger = logger

			ctx = WithApp(ctx, app)
			cmd.SetContext(ctx)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&app.Flags.Color, "color", app.Flags.Color, "Color output: auto|always|never")
	root.PersistentFlags().StringVar(&app.Flags.Output, "output", app.Flags.Output, "Output format: text|json")
	root.PersistentFlags().BoolVar(&app.Flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&app.Flags.Query, "query", "", "JQ filter expression for JSON output")
	root.PersistentFlags().BoolVarP(&app.Flags.Yes, "yes", "y", false, "Skip confirmation prompts (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NoInput, "no-input", false, "Alias for --yes (non-interactive)")
	root.PersistentFlags().BoolVar(&app.Flags.NonInteractive, "non-interactive", false, "Alias for --yes (non-interactive)")
	_ = root.PersistentFlags().MarkHidden("no-input")
	_ = root.PersistentFlags().MarkHidden("non-interactive")

	root.AddCommand(newTruncateCmd(app))
	root.AddCommand(newPlanCmd(app))
	root.AddCommand(newVersionCmd())
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
