package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var offCmd = &cobra.Command{
	Use:   "off <description>...",
	Short: "Finish the active timer and log an entry",
	Args:  cobra.ArbitraryArgs,
	RunE:  runOff,
}

func runOff(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		res, err := tracker.Stop(s, now, strings.Join(args, " "))
		if err != nil {
			return err
		}
		successColor.Printf("Logged %s for project %s.\n",
			durationColor.Sprint(timecalc.FormatDuration(res.DurationSeconds)),
			projectColor.Sprint(res.Project))
		return nil
	})
}
