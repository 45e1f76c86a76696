package services

import (
	"github.com/xvierd/dusk/internal/domain"
)

// TaskScheduler emits begin and end events for the plan's tasks and drives
// the pomodoro engine of the active one.
type TaskScheduler struct {
	pomodoro *PomodoroEngine
}

// NewTaskScheduler creates a task scheduler using engine for pomodoros.
func NewTaskScheduler(engine *PomodoroEngine) *TaskScheduler {
	return &TaskScheduler{pomodoro: engine}
}

// Step evaluates every task in plan order at now. Several tasks may fire in
// the same tick.
func (s *TaskScheduler) Step(now domain.TimeOfDay, plan domain.Plan, state *domain.RunState) []domain.Event {
	var events []domain.Event

	for i := 0; i < plan.Len(); i++ {
		task := plan.Task(i)
		ts := &state.Tasks[i]

		if task.InWindow(now) {
			if !ts.Began {
				events = append(events, taskStartedEvent(now, task))
				ts.Began = true
				ts.Ended = false
				events = append(events, s.pomodoro.Begin(now, i, task, state))
			}
			if owns(state, i) {
				events = append(events, s.pomodoro.Step(now, state)...)
			}
		}

		if task.Ended(now) && !ts.Ended {
			events = append(events,
				screenFlashEvent(now, task.Name, state.ScreenKelvin),
				taskEndedEvent(now, plan, i, state.TotalPomodoros),
			)
			ts.Ended = true
			ts.Began = false
			if owns(state, i) {
				state.Pomodoro = nil
			}
		}

		// Re-arm when the clock is back before a boundary.
		if task.BeforeStart(now) {
			ts.Began = false
		}
		if task.BeforeEnd(now) {
			ts.Ended = false
		}
	}

	return events
}

// owns reports whether the running pomodoro belongs to task i.
func owns(state *domain.RunState, i int) bool {
	return state.Pomodoro != nil && state.Pomodoro.TaskIndex == i
}
