package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all logged entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// exportRow is one flattened logged entry for export output.
type exportRow struct {
	Project         string `json:"project"`
	Description     string `json:"description"`
	StartedAt       string `json:"started_at"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func runExport(cmd *cobra.Command, args []string) error {
	return withStore(func(s *model.ProjectStore, now time.Time) error {
		rows := exportRows(s)

		switch exportFormat {
		case "json":
			data, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding JSON: %w", err)
			}
			fmt.Println(string(data))
		case "md":
			printMarkdown(rows)
		default: // csv
			printCSV(rows)
		}
		return nil
	})
}

// exportRows flattens every project's entries, sorted by project name
// and, within a project, in insertion order.
func exportRows(s *model.ProjectStore) []exportRow {
	names := make([]string, 0, len(s.Projects))
	for name := range s.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []exportRow
	for _, name := range names {
		for _, lt := range s.Projects[name].LoggedTimes {
			rows = append(rows, exportRow{
				Project:         name,
				Description:     lt.Description,
				StartedAt:       time.Unix(lt.StartEpoch, 0).UTC().Format(time.RFC3339),
				DurationSeconds: lt.DurationSeconds,
			})
		}
	}
	return rows
}

func printCSV(rows []exportRow) {
	fmt.Println("project,description,started_at,duration_minutes")
	for _, r := range rows {
		fmt.Printf("%s,%s,%s,%d\n",
			csvEscape(r.Project),
			csvEscape(r.Description),
			csvEscape(r.StartedAt),
			r.DurationSeconds/60,
		)
	}
}

func printMarkdown(rows []exportRow) {
	if len(rows) == 0 {
		fmt.Println("No entries found.")
		return
	}
	var currentProject string
	for _, r := range rows {
		if r.Project != currentProject {
			fmt.Println(r.Project)
			currentProject = r.Project
		}
		fmt.Printf("  %s  %s (%s)\n",
			r.StartedAt, r.Description, timecalc.FormatDuration(r.DurationSeconds))
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
