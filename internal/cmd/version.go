package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: runE(nil, func(cmd *cobra.Command, _ []string, app *App) error {
			if app.IsJSON(cmd.Context()) {
				return app.PrintJSON(cmd, map[string]string{
					"version": Version,
					"commit":  Commit,
					"date":    Date,
				})
			}
			fmt.Printf("linetrim %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		}),
	}
}
