package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <project>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		if err := tracker.Remove(s, args[0]); err != nil {
			return err
		}
		successColor.Printf("Removed project %s.\n", projectColor.Sprint(args[0]))
		return nil
	})
}
