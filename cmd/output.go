package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// outputStyles are the styles shared by the report commands.
type outputStyles struct {
	title  lipgloss.Style
	dim    lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	warn   lipgloss.Style
}

// newOutputStyles builds styles for w. The renderer drops colors when w is
// not a terminal; --no-color drops them always.
func newOutputStyles(w io.Writer) outputStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return outputStyles{title: plain, dim: plain, value: plain, accent: plain, warn: plain}
	}
	r := lipgloss.NewRenderer(w)
	return outputStyles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		value:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA")),
		accent: r.NewStyle().Foreground(lipgloss.Color("#34D399")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// formatMinutes formats a duration as "25m", "1h" or "1h30m".
func formatMinutes(d time.Duration) string {
	if d >= time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
