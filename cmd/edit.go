package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var editCmd = &cobra.Command{
	Use:   "edit <duration>...",
	Short: "Edit the duration of the last logged entry",
	Args:  cobra.ArbitraryArgs,
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		res, err := tracker.EditLast(s, strings.Join(args, " "))
		if err != nil {
			return err
		}
		successColor.Printf("Modified the last entry from %s to %s.\n",
			durationColor.Sprint(timecalc.FormatDuration(res.OldSeconds)),
			durationColor.Sprint(timecalc.FormatDuration(res.NewSeconds)))
		return nil
	})
}
