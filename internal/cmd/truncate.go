package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	cerrors "github.com/salmonumbrella/linetrim/internal/errors"
	"github.com/salmonumbrella/linetrim/internal/format"
	"github.com/salmonumbrella/linetrim/internal/truncate"
	"github.com/spf13/cobra"
)

const linesEnv = "LINETRIM_LINES"

type truncateOptions struct {
	lines  int
	dryRun bool
}

func newTruncateCmd(app *App) *cobra.Command {
	var opts truncateOptions

	cmd := &cobra.Command{
		Use:   "truncate <file>",
		Short: "Back up a file, then keep only its first N lines",
		Long: `Copy <file> to <stem>_backup_<YYYYMMDD_HHMMSS>.<ext> in the same directory,
then rewrite <file> with only its first --lines lines.

Line terminators are kept as they are. Files with fewer lines than --lines
are rewritten unchanged. The content is not inspected: the cut is purely
positional.

WARNING: the rewrite is destructive. The backup is the only way back.`,
		Example: `  linetrim truncate portal.php --lines 1695
  linetrim truncate portal.php -n 1695 --dry-run
  LINETRIM_LINES=1695 linetrim truncate portal.php -y`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if err := resolveLines(cmd, &opts.lines); err != nil {
				return err
			}
			return runTruncate(cmd, app, args[0], opts)
		}),
	}

	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 0, "Number of lines to keep (env "+linesEnv+")")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would change without writing anything")

	return cmd
}

func newPlanCmd(app *App) *cobra.Command {
	var opts truncateOptions

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Preview a truncation (same as truncate --dry-run)",
		Example: `  linetrim plan portal.php --lines 1695
  linetrim --output=json plan portal.php -n 1695`,
		Args: cobra.ExactArgs(1),
		RunE: runE(app, func(cmd *cobra.Command, args []string, app *App) error {
			if err := resolveLines(cmd, &opts.lines); err != nil {
				return err
			}
			opts.dryRun = true
			return runTruncate(cmd, app, args[0], opts)
		}),
	}

	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 0, "Number of lines to keep (env "+linesEnv+")")

	return cmd
}

// resolveLines fills lines from LINETRIM_LINES when --lines was not given.
// A missing or malformed count is an error: it must never default to zero.
func resolveLines(cmd *cobra.Command, lines *int) error {
	if cmd.Flags().Changed("lines") {
		return nil
	}
	v := strings.TrimSpace(os.Getenv(linesEnv))
	if v == "" {
		return Suggest(fmt.Errorf("missing line count"), "Pass --lines N or set "+linesEnv)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return Suggest(fmt.Errorf("invalid %s %q", linesEnv, v), "Set it to a non-negative integer")
	}
	*lines = n
	return nil
}

func runTruncate(cmd *cobra.Command, app *App, path string, opts truncateOptions) error {
	ctx := cmd.Context()

	if opts.dryRun {
		r, err := app.Truncator.Plan(ctx, path, opts.lines)
		if err != nil {
			return err
		}
		return printReport(cmd, app, r)
	}

	if !app.SkipConfirm(ctx) {
		plan, err := app.Truncator.Plan(ctx, path, opts.lines)
		if err != nil {
			return err
		}
		if plan.RemovedLines > 0 {
			prompt := fmt.Sprintf("Remove the last %s of %s? (yes/no): ", format.Lines(plan.RemovedLines), path)
			ok, err := app.Confirm(cmd, prompt, "yes", "y")
			if err != nil {
				return err
			}
			if !ok {
				app.UI.Warning("Truncation cancelled")
				return nil
			}
		}
	}

	r, err := app.Truncator.Truncate(ctx, path, opts.lines)
	if err != nil {
		err = cerrors.WithContext(err, "while truncating "+path)
		if r != nil && r.BackupPath != "" && failedDuringRewrite(err) {
			return Suggest(err, cerrors.RestoreSuggestion(r.BackupPath))
		}
		return err
	}
	return printReport(cmd, app, r)
}

func printReport(cmd *cobra.Command, app *App, r *truncate.Report) error {
	if app.IsJSON(cmd.Context()) {
		return app.PrintJSON(cmd, r)
	}

	u := app.UI
	if r.DryRun {
		u.Infof("Would create backup: %s", r.BackupPath)
	} else {
		u.Success(fmt.Sprintf("Backup created: %s", r.BackupPath))
	}
	u.Infof("Total lines in original file: %d", r.OriginalLines)
	u.Infof("Lines after truncation: %d", r.RetainedLines)
	u.Infof("Removed %s (%s)", format.Lines(r.RemovedLines), format.FormatBytes(r.OriginalBytes-r.RetainedBytes))

	if r.DryRun {
		u.Warning("Dry run: no files were changed")
		return nil
	}
	u.Success(fmt.Sprintf("Done: %s now has %s", r.Path, format.Lines(r.RetainedLines)))
	return nil
}
