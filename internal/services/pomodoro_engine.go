package services

import (
	"github.com/xvierd/dusk/internal/domain"
)

// PomodoroEngine runs the focus/break cycle inside the active task.
type PomodoroEngine struct {
	config domain.PomodoroConfig
}

// NewPomodoroEngine creates an engine with the given cadence.
func NewPomodoroEngine(config domain.PomodoroConfig) *PomodoroEngine {
	return &PomodoroEngine{config: config}
}

// Begin starts a fresh cycle for the task at index i and returns the
// announcement of its first focus interval.
func (e *PomodoroEngine) Begin(now domain.TimeOfDay, i int, task domain.Task, state *domain.RunState) domain.Event {
	state.Pomodoro = domain.NewPomodoro(i, task.Name, now)
	return focusStartedEvent(now, state.Pomodoro, e.config.FocusDuration)
}

// Step advances the cycle held in state. It emits nothing when no
// pomodoro is running.
func (e *PomodoroEngine) Step(now domain.TimeOfDay, state *domain.RunState) []domain.Event {
	p := state.Pomodoro
	if p == nil {
		return nil
	}

	var events []domain.Event

	// A finished break rolls into the next focus interval, which counts from
	// the scheduled end of the break rather than from this tick.
	if brk, ok := p.Phase.(domain.Break); ok {
		if domain.Elapsed(brk.Since, now) < domain.Elapsed(brk.Since, brk.Until) {
			return nil
		}
		p.Phase = domain.Focus{Start: brk.Until}
		events = append(events, focusStartedEvent(now, p, e.config.FocusDuration))
	}

	focus, ok := p.Phase.(domain.Focus)
	if !ok {
		return events
	}

	elapsed := domain.Elapsed(focus.Start, now)
	switch {
	case elapsed < e.config.FocusDuration:
		events = append(events, focusProgressEvent(now, p, elapsed, e.config.FocusDuration))
	case elapsed > e.config.FocusDuration:
		long := p.Count%e.config.LongBreakEvery == 0
		length := e.config.ShortBreakDuration
		if long {
			length = e.config.LongBreakDuration
		}
		p.Phase = domain.Break{Since: now, Until: now.Add(length), Long: long}
		p.Count++
		state.TotalPomodoros++
		events = append(events, breakStartedEvent(now, p.Task, length, long))
	}

	return events
}
