package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var newCmd = &cobra.Command{
	Use:   "new <project>",
	Short: "Add a new project and select it",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		if err := tracker.Create(s, args[0]); err != nil {
			return err
		}
		successColor.Printf("Added project %s.\n", projectColor.Sprint(args[0]))
		return nil
	})
}
