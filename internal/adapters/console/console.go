// Package console prints run progress to the terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// Console writes one "[HH:MM] summary" line per event.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	color  bool
	styles styles
}

type styles struct {
	clock    lipgloss.Style
	task     lipgloss.Style
	focus    lipgloss.Style
	pause    lipgloss.Style
	progress lipgloss.Style
	screen   lipgloss.Style
	bedtime  lipgloss.Style
	info     lipgloss.Style
}

// Ensure Console implements ports.Console.
var _ ports.Console = (*Console)(nil)

// New creates a console on out. Styles are applied only when color is set.
func New(out io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:   out,
		color: color,
		styles: styles{
			clock:    r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
			task:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0")),
			focus:    r.NewStyle().Foreground(lipgloss.Color("#A78BFA")),
			pause:    r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
			progress: r.NewStyle().Foreground(lipgloss.Color("#95A5A6")),
			screen:   r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
			bedtime:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171")),
			info:     r.NewStyle().Foreground(lipgloss.Color("#34D399")),
		},
	}
}

// NewStdout creates a console on stdout, colored when stdout is a
// terminal and noColor is not set.
func NewStdout(noColor bool) *Console {
	return New(os.Stdout, !noColor && term.IsTerminal(os.Stdout.Fd()))
}

// Event prints e. Focus progress is indented under its task.
func (c *Console) Event(e domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stamp := c.render(c.styles.clock, fmt.Sprintf("[%s]", e.At))
	summary := c.render(c.styleFor(e.Type), e.Summary)
	if e.Type == domain.EventFocusProgress {
		_, _ = fmt.Fprintf(c.out, "%s   %s\n", stamp, summary)
		return
	}
	_, _ = fmt.Fprintf(c.out, "%s %s\n", stamp, summary)
}

// Info prints a free-form line.
func (c *Console) Info(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out, c.render(c.styles.info, message))
}

func (c *Console) styleFor(t domain.EventType) lipgloss.Style {
	switch t {
	case domain.EventTaskStarted, domain.EventTaskEnded:
		return c.styles.task
	case domain.EventFocusStarted:
		return c.styles.focus
	case domain.EventBreakStarted:
		return c.styles.pause
	case domain.EventFocusProgress:
		return c.styles.progress
	case domain.EventScreenFlash, domain.EventScreenRamp, domain.EventScreenSet:
		return c.styles.screen
	default:
		return c.styles.bedtime
	}
}

func (c *Console) render(s lipgloss.Style, text string) string {
	if !c.color {
		return text
	}
	return s.Render(text)
}
