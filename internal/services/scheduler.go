package services

import (
	"github.com/xvierd/dusk/internal/domain"
)

// Scheduler turns one clock sample into the events of a tick: task events
// (with the active task's pomodoro), then bedtime events.
type Scheduler struct {
	plan  domain.Plan
	tasks *TaskScheduler
	ramp  *BedtimeRamp
	state domain.RunState
}

// NewScheduler creates a scheduler for plan in its initial state.
func NewScheduler(plan domain.Plan, config Config) *Scheduler {
	return &Scheduler{
		plan:  plan,
		tasks: NewTaskScheduler(NewPomodoroEngine(config.Pomodoro)),
		ramp:  NewBedtimeRamp(config.Ramp),
		state: domain.NewRunState(plan.Len(), len(config.Ramp.Steps), config.Ramp.BaselineKelvin),
	}
}

// Step runs one tick at now. It returns the events to dispatch, in order,
// and whether the run is over. Once over, further steps emit nothing.
func (s *Scheduler) Step(now domain.TimeOfDay) ([]domain.Event, bool) {
	if s.state.Finished {
		return nil, true
	}

	events := s.tasks.Step(now, s.plan, &s.state)
	bedtimeEvents, done := s.ramp.Step(now, s.plan.Bedtime(), &s.state)
	events = append(events, bedtimeEvents...)

	tick := now
	s.state.LastTick = &tick

	return events, done
}

// State returns a snapshot of the run state.
func (s *Scheduler) State() domain.RunState {
	return s.state.Clone()
}

// Plan returns the plan being scheduled.
func (s *Scheduler) Plan() domain.Plan {
	return s.plan
}
