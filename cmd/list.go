package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects and their total time",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		totals := tracker.List(s)
		if len(totals) == 0 {
			emptyColor.Println("No projects found.")
			return nil
		}

		noticeColor.Println("Project list:")
		for _, pt := range totals {
			name := projectColor.Sprint(pt.Name)
			if pt.Active {
				name = activeColor.Sprint(pt.Name)
			}
			fmt.Printf("  %s - %s\n", name,
				durationColor.Sprint(timecalc.FormatDuration(pt.TotalSeconds)))
		}
		return nil
	})
}
