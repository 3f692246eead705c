package timecalc

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats seconds as a human-readable string like "1h 40m" or "45m" or "30s".
func FormatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%ds", s)
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseDuration parses a Go-style duration string like "1h30m" into whole
// seconds. Spaces are ignored so "1h 30m" works too. The span must be
// positive and is rounded to the nearest second.
func ParseDuration(text string) (int64, error) {
	cleaned := strings.ReplaceAll(text, " ", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty duration")
	}
	d, err := time.ParseDuration(cleaned)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return int64(d.Round(time.Second) / time.Second), nil
}
