package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/aospbuild/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last recorded run for the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := c.app.Status(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), rec)
		},
	}
}

func printRecord(w io.Writer, rec domain.RunRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(key, value string) {
		if value != "" {
			_, _ = fmt.Fprintf(tw, "%s:\t%s\n", key, value)
		}
	}

	row("Run", rec.RunID)
	row("Build directory", rec.BuildDir)
	row("Branch", rec.Branch)
	row("Requested target", rec.RequestedTarget)
	if rec.SelectedTarget != rec.RequestedTarget {
		row("Selected target", rec.SelectedTarget)
	}
	row("Result", string(rec.Result))
	row("Failed phase", string(rec.FailedPhase))
	if rec.SyncAttempts > 0 {
		row("Sync attempts", fmt.Sprint(rec.SyncAttempts))
	}
	if !rec.FinishedAt.IsZero() {
		row("Finished", fmt.Sprintf("%s (%s)", humanize.Time(rec.FinishedAt), rec.FinishedAt.Format("2006-01-02 15:04:05")))
		row("Duration", rec.Duration().String())
	}
	row("Log", rec.LogPath)
	return tw.Flush()
}
