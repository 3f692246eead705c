package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "List all logged times for the active project",
	Args:  cobra.NoArgs,
	RunE:  runTime,
}

func runTime(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		log, err := tracker.Log(s)
		if err != nil {
			return err
		}

		name := projectColor.Sprint(log.Project)
		if len(log.Entries) == 0 {
			emptyColor.Printf("No logged times for project %s.\n", name)
			return nil
		}

		noticeColor.Printf("Logged times for %s, totaling %s:\n", name,
			durationColor.Sprint(timecalc.FormatDuration(log.TotalSeconds)))
		for _, lt := range log.Entries {
			fmt.Printf("  %s - %s\n",
				durationColor.Sprint(timecalc.FormatDuration(lt.DurationSeconds)),
				descColor.Sprint(lt.Description))
		}
		return nil
	})
}
