package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/clock"
	"github.com/Tiliavir/timelogger/internal/config"
	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/store"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var (
	// storeFile is the --file override of the log store location.
	storeFile string

	// timeSource supplies "now"; swapped for a fixed clock in tests.
	timeSource clock.Clock = clock.System{}
)

var rootCmd = &cobra.Command{
	Use:   "tl [project]",
	Short: "An extremely lightweight time tracking tool for work",
	Long: `tl tracks work time across named projects, one of which is "active".
A bare project name selects that project; with no arguments the active
project's log is shown. All data lives in a single JSON file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// runRoot handles the two default behaviors: a bare project name
// selects it, no arguments at all shows the active project's log.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return withStore(func(s *model.ProjectStore, now time.Time) error {
			if err := tracker.Select(s, args[0]); err != nil {
				return err
			}
			successColor.Printf("Selected project %s.\n", projectColor.Sprint(args[0]))
			return nil
		})
	}
	return runTime(cmd, args)
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFile, "file", "",
		"Path of the log store (default from config, else ~/.timelogger.json)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(onCmd)
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}

// storePath resolves the location of the persisted store: the --file
// flag wins, then the config file, then the built-in default.
func storePath(cfg config.Config) (string, error) {
	if storeFile != "" {
		return storeFile, nil
	}
	if cfg.DataFile != "" {
		return cfg.DataFile, nil
	}
	return store.DefaultPath()
}

// withStore runs one command against the persisted store: load, capture
// "now" once, dispatch, then save unconditionally — even when the
// command reports an error — so any progress made before the failure is
// kept. This is the whole lifecycle of an invocation.
func withStore(fn func(s *model.ProjectStore, now time.Time) error) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	applyColorMode(cfg.Color)

	path, err := storePath(cfg)
	if err != nil {
		return err
	}

	s, err := store.Load(path)
	if err != nil {
		return err
	}

	cmdErr := fn(s, timeSource.Now())

	if err := store.Save(path, s); err != nil {
		if cmdErr != nil {
			errColor.Fprintln(os.Stderr, cmdErr)
		}
		return err
	}
	return cmdErr
}
