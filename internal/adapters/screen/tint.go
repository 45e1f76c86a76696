// Package screen drives the display color temperature through an external
// command such as xsct.
package screen

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/domain"
	"github.com/xvierd/dusk/internal/ports"
)

// Command sets the temperature by spawning "<command> <kelvin>".
type Command struct {
	path string
	log  zerolog.Logger
}

// Ensure Command implements ports.ScreenTint.
var _ ports.ScreenTint = (*Command)(nil)

// New resolves command on PATH. A missing command is reported as
// domain.ErrActuatorMissing.
func New(command string, log zerolog.Logger) (*Command, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrActuatorMissing, command, err)
	}
	return &Command{path: path, log: log}, nil
}

// Set starts the command and returns without waiting for it to finish.
func (c *Command) Set(kelvin int) error {
	cmd := exec.Command(c.path, strconv.Itoa(kelvin))
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrActuatorMissing, c.path)
		}
		return fmt.Errorf("failed to start %s: %w", c.path, err)
	}
	c.log.Debug().Str("cmd", c.path).Int("kelvin", kelvin).Int("pid", cmd.Process.Pid).Msg("spawned")

	// Reap the child so finished spawns do not linger as zombies.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Path returns the resolved command path.
func (c *Command) Path() string {
	return c.path
}

// Noop records temperatures without touching the display. It backs
// --dry-run.
type Noop struct {
	log  zerolog.Logger
	last int
}

// Ensure Noop implements ports.ScreenTint.
var _ ports.ScreenTint = (*Noop)(nil)

// NewNoop creates a dry-run screen.
func NewNoop(log zerolog.Logger) *Noop {
	return &Noop{log: log}
}

// Set logs the requested temperature.
func (n *Noop) Set(kelvin int) error {
	n.last = kelvin
	n.log.Debug().Int("kelvin", kelvin).Msg("dry-run screen change")
	return nil
}

// Last returns the most recent temperature, or 0 if none was set.
func (n *Noop) Last() int {
	return n.last
}
