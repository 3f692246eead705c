package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active project's timer status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		st, err := tracker.CurrentStatus(s, now)
		if err != nil {
			return err
		}

		if st.Running {
			noticeColor.Println("Running:")
			fmt.Printf("  Project: %s\n", projectColor.Sprint(st.Project))
			fmt.Printf("  Elapsed: %s\n",
				durationColor.Sprint(timecalc.FormatDurationHHMMSS(st.ElapsedSeconds)))
		} else {
			fmt.Printf("No timer running for project %s.\n", projectColor.Sprint(st.Project))
		}
		fmt.Printf("Logged: %s across %d entries.\n",
			durationColor.Sprint(timecalc.FormatDuration(st.TotalSeconds)), st.EntryCount)
		return nil
	})
}
