package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last logged entry, or cancel the running timer",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

func runUndo(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		res, err := tracker.Undo(s, now)
		if err != nil {
			return err
		}
		if res.Cancelled {
			successColor.Printf("Cancelled %s of unlogged time.\n",
				durationColor.Sprint(timecalc.FormatDuration(res.DurationSeconds)))
			return nil
		}
		successColor.Printf("Removed the last entry with duration %s: %s\n",
			durationColor.Sprint(timecalc.FormatDuration(res.DurationSeconds)),
			descColor.Sprint(res.Description))
		return nil
	})
}
