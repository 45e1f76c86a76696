// Package services implements the Dusk use cases: turning wall-clock time
// into task, pomodoro and bedtime events, and running a day until bedtime.
package services

import (
	"fmt"
	"time"

	"github.com/xvierd/dusk/internal/domain"
)

// Config holds the cadence and thresholds a run is scheduled with.
type Config struct {
	Pomodoro     domain.PomodoroConfig
	Ramp         domain.RampConfig
	Flash        domain.FlashConfig
	PollInterval time.Duration
	// RestoreOnInterrupt resets the screen to the ramp baseline when a run
	// is cancelled before bedtime.
	RestoreOnInterrupt bool
}

// DefaultConfig returns the standard schedule: 25/5/10 pomodoros, the
// three-step ramp and a 20 second poll.
func DefaultConfig() Config {
	return Config{
		Pomodoro:           domain.DefaultPomodoroConfig(),
		Ramp:               domain.DefaultRampConfig(),
		Flash:              domain.DefaultFlashConfig(),
		PollInterval:       20 * time.Second,
		RestoreOnInterrupt: true,
	}
}

// Validate checks every part of the configuration.
func (c Config) Validate() error {
	if err := c.Pomodoro.Validate(); err != nil {
		return err
	}
	if err := c.Ramp.Validate(); err != nil {
		return err
	}
	if c.Flash.Cycles < 0 || c.Flash.Phase < 0 || c.Flash.Kelvin <= 0 {
		return fmt.Errorf("invalid flash settings: %d cycles of %s at %dK", c.Flash.Cycles, c.Flash.Phase, c.Flash.Kelvin)
	}
	if c.PollInterval <= 0 || c.PollInterval > time.Minute {
		return fmt.Errorf("poll interval must be in (0, 1m], got %s", c.PollInterval)
	}
	return nil
}
