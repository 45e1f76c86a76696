package domain

import (
	"fmt"
	"time"
)

// PomodoroConfig holds the focus and break cadence used inside a task.
type PomodoroConfig struct {
	FocusDuration      time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	// LongBreakEvery makes every n-th break a long one.
	LongBreakEvery int
}

// DefaultPomodoroConfig returns 25 minutes of focus, 5 minute breaks and a
// 10 minute break after every third pomodoro.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		FocusDuration:      25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  10 * time.Minute,
		LongBreakEvery:     3,
	}
}

// Validate rejects durations that would stall the cycle.
func (c PomodoroConfig) Validate() error {
	if c.FocusDuration < time.Minute {
		return fmt.Errorf("pomodoro focus must be at least 1m, got %s", c.FocusDuration)
	}
	if c.ShortBreakDuration < time.Minute || c.LongBreakDuration < time.Minute {
		return fmt.Errorf("pomodoro breaks must be at least 1m")
	}
	if c.LongBreakEvery < 1 {
		return fmt.Errorf("pomodoro long_break_every must be >= 1, got %d", c.LongBreakEvery)
	}
	return nil
}

// Phase is the position inside a pomodoro cycle: Focus or Break.
type Phase interface {
	isPhase()
}

// Focus is a focus interval that began at Start.
type Focus struct {
	Start TimeOfDay
}

// Break is a pause from Since until Until.
type Break struct {
	Since TimeOfDay
	Until TimeOfDay
	Long  bool
}

func (Focus) isPhase() {}
func (Break) isPhase() {}

// Pomodoro is the cycle of the task currently running. It exists only
// while that task is active.
type Pomodoro struct {
	TaskIndex int
	Task      string
	// Count is the number of the current or next focus interval.
	Count int
	Phase Phase
}

// NewPomodoro starts the first focus interval of a task at now.
func NewPomodoro(taskIndex int, task string, now TimeOfDay) *Pomodoro {
	return &Pomodoro{
		TaskIndex: taskIndex,
		Task:      task,
		Count:     1,
		Phase:     Focus{Start: now},
	}
}

// IsFocus reports whether the cycle is in a focus interval.
func (p *Pomodoro) IsFocus() bool {
	_, ok := p.Phase.(Focus)
	return ok
}

// IsBreak reports whether the cycle is in a break.
func (p *Pomodoro) IsBreak() bool {
	_, ok := p.Phase.(Break)
	return ok
}
