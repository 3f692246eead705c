package cmd

import (
	"github.com/fatih/color"

	"github.com/Tiliavir/timelogger/internal/config"
)

var (
	successColor  = color.New(color.FgHiGreen)
	noticeColor   = color.New(color.FgHiYellow)
	errColor      = color.New(color.FgHiYellow)
	emptyColor    = color.New(color.FgHiRed)
	projectColor  = color.New(color.FgHiCyan)
	activeColor   = color.New(color.FgHiGreen)
	durationColor = color.New(color.FgHiRed)
	descColor     = color.New(color.FgHiBlue)
)

// applyColorMode applies the configured color setting. The "auto"
// default is the library's own TTY detection.
func applyColorMode(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}
