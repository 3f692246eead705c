package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Start the timer for the active project",
	Args:  cobra.NoArgs,
	RunE:  runOn,
}

func runOn(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		name, err := tracker.Start(s, now)
		if err != nil {
			return err
		}
		successColor.Printf("Now tracking time for project %s.\n", projectColor.Sprint(name))
		return nil
	})
}
